package types

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
)

func TestReadError_Error(t *testing.T) {
	err := &ReadError{
		Path:   "short.edf",
		Field:  "recording id",
		Offset: 88,
		Width:  80,
		Got:    12,
		Err:    io.ErrUnexpectedEOF,
	}

	msg := err.Error()
	for _, substr := range []string{"short.edf", "recording id", "offset 88", "80 bytes", "returned 12"} {
		if !strings.Contains(msg, substr) {
			t.Errorf("error message %q should contain %q", msg, substr)
		}
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("ReadError should unwrap to io.ErrUnexpectedEOF")
	}
}

func TestEncodingError_Is(t *testing.T) {
	err := &EncodingError{Path: "latin.edf", Field: "patient info", Offset: 11}

	if !errors.Is(err, ErrInvalidUTF8) {
		t.Error("EncodingError should match ErrInvalidUTF8")
	}
	if errors.Is(err, ErrInvalidVersion) {
		t.Error("EncodingError should not match ErrInvalidVersion")
	}
	if !strings.Contains(err.Error(), "offset 11") {
		t.Errorf("error should contain offset, got: %s", err.Error())
	}
}

func TestInvalidVersionError(t *testing.T) {
	err := &InvalidVersionError{Path: "bdf.edf", Got: []byte("\xffBIOSEMI")}

	if !errors.Is(err, ErrInvalidVersion) {
		t.Error("InvalidVersionError should match ErrInvalidVersion")
	}
	msg := err.Error()
	if !strings.Contains(msg, "bdf.edf") || !strings.Contains(msg, "invalid version") {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestFieldError_Unwrap(t *testing.T) {
	_, cause := strconv.ParseUint("big", 10, 64)
	err := &FieldError{Path: "bad.edf", Field: "header size", Value: "big     ", Offset: 184, Err: cause}

	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("FieldError should unwrap to the parse error")
	}
	if !strings.Contains(err.Error(), "malformed header size") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	err := &ValidationError{Path: "bad.edf", Field: "data record duration", Value: "1.5     ", Offset: 244, Err: ErrFractionalDuration}

	if !errors.Is(err, ErrFractionalDuration) {
		t.Error("ValidationError should unwrap to its cause")
	}
	if errors.Is(err, ErrNonPositiveRecords) {
		t.Error("ValidationError should not match an unrelated cause")
	}
	if !strings.Contains(err.Error(), "invalid data record duration") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestWarning_String(t *testing.T) {
	w := Warning{Stage: "header", Message: "size mismatch", Offset: 184}
	if got := w.String(); got != "header (at offset 184): size mismatch" {
		t.Errorf("String() = %q", got)
	}

	w = Warning{Stage: "file", Message: "short"}
	if got := w.String(); got != "file: short" {
		t.Errorf("String() = %q", got)
	}
}
