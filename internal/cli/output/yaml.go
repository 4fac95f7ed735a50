package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// PrintYAML writes decoded headers as a YAML sequence, one mapping per
// file, using the same keys as the JSON output.
func PrintYAML(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
