package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrInvalidVersion reports a version field other than "0" followed by
	// seven spaces.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrInvalidUTF8 reports a text field that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrNonPositiveRecords reports a record count of zero or a negative
	// value other than the -1 sentinel.
	ErrNonPositiveRecords = errors.New("record length cannot be negative or zero")

	// ErrFractionalDuration reports a data record duration with a non-zero
	// fractional part. Fractional durations are not supported.
	ErrFractionalDuration = errors.New("fractional record durations are not supported")
)

// ReadError is returned when the source cannot supply the bytes of a field.
type ReadError struct {
	Err    error
	Path   string
	Field  string
	Offset int64
	Width  int
	Got    int
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: read of %d bytes for %s at offset %d returned %d bytes: %v",
		e.Path, e.Width, e.Field, e.Offset, e.Got, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// EncodingError is returned when a field's bytes are not valid UTF-8.
type EncodingError struct {
	Path  string
	Field string
	// Offset of the first invalid byte in the file.
	Offset int64
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d: %v", e.Path, e.Field, e.Offset, ErrInvalidUTF8)
}

func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidUTF8
}

// InvalidVersionError is returned when the file does not start with the
// EDF version marker.
type InvalidVersionError struct {
	Path string
	Got  []byte
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("%s: header: %v %q", e.Path, ErrInvalidVersion, e.Got)
}

func (e *InvalidVersionError) Is(target error) bool {
	return target == ErrInvalidVersion
}

// FieldError is returned when a field's text cannot be parsed as the
// date, time or number it must hold.
type FieldError struct {
	Err    error
	Path   string
	Field  string
	Value  string
	Offset int64
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: malformed %s %q at offset %d: %v", e.Path, e.Field, e.Value, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when a field parses but holds a value the
// decoder rejects.
type ValidationError struct {
	Err    error
	Path   string
	Field  string
	Value  string
	Offset int64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s %q at offset %d: %v", e.Path, e.Field, e.Value, e.Offset, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue found in a decoded header.
//
// Warnings flag headers that decode cleanly but disagree with the file
// around them, such as a declared header size that does not match the
// number of signals.
type Warning struct {
	// Stage where the warning occurred
	Stage string `json:"stage" yaml:"stage"` // "header", "file"

	// Warning message
	Message string `json:"message" yaml:"message"`

	// File offset where the issue occurred (0 if not applicable)
	Offset int64 `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
