package output

import (
	"encoding/json"
	"io"
)

// PrintJSON writes decoded headers, or any other value such as version
// info, as indented JSON. A list of FileView encodes as one array so the
// output of a multi-file run stays a single document.
func PrintJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
