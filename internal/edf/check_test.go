package edf

import (
	"strings"
	"testing"

	"github.com/simonhull/edfmeta/internal/types"
)

func TestCheck_Consistent(t *testing.T) {
	h := types.Header{Size: 256 * 5, Signals: 4}

	if warnings := Check(h, 256*5+1000); len(warnings) != 0 {
		t.Errorf("Check() = %v, want no warnings", warnings)
	}
}

func TestCheck_SizeMismatch(t *testing.T) {
	h := types.Header{Size: 256, Signals: 4}

	warnings := Check(h, -1)
	if len(warnings) != 1 {
		t.Fatalf("Check() returned %d warnings, want 1", len(warnings))
	}

	w := warnings[0]
	if w.Stage != "header" {
		t.Errorf("Stage = %q, want header", w.Stage)
	}
	if w.Offset != 184 {
		t.Errorf("Offset = %d, want 184", w.Offset)
	}
	if !strings.Contains(w.Message, "1280 B expected for 4 signals") {
		t.Errorf("Message = %q", w.Message)
	}
}

func TestCheck_FileShorterThanHeader(t *testing.T) {
	h := types.Header{Size: 256 * 3, Signals: 2}

	warnings := Check(h, 300)
	if len(warnings) != 1 {
		t.Fatalf("Check() returned %d warnings, want 1", len(warnings))
	}
	if warnings[0].Stage != "file" {
		t.Errorf("Stage = %q, want file", warnings[0].Stage)
	}
}
