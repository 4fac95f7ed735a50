package edf

import (
	"fmt"

	"github.com/simonhull/edfmeta/internal/types"
)

// Check compares a decoded header with the file it came from and returns
// any inconsistencies as warnings. fileSize is the size of the file in
// bytes, or a negative value when unknown.
func Check(h types.Header, fileSize int64) []types.Warning {
	var warnings []types.Warning

	if expected := h.ExpectedSize(); h.Size != expected {
		warnings = append(warnings, types.Warning{
			Stage: "header",
			Message: fmt.Sprintf("declared header size %d B does not match %d B expected for %d signals",
				h.Size, expected, h.Signals),
			Offset: offsetOf(FieldSize),
		})
	}

	if fileSize >= 0 && uint64(fileSize) < h.Size {
		warnings = append(warnings, types.Warning{
			Stage:   "file",
			Message: fmt.Sprintf("file is %d B, shorter than its declared %d B header", fileSize, h.Size),
		})
	}

	return warnings
}
