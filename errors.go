package edfmeta

import (
	"github.com/simonhull/edfmeta/internal/types"
)

// ReadError is an alias to types.ReadError.
// Returned when the source ends before a field could be read.
type ReadError = types.ReadError

// EncodingError is an alias to types.EncodingError.
type EncodingError = types.EncodingError

// InvalidVersionError is an alias to types.InvalidVersionError.
type InvalidVersionError = types.InvalidVersionError

// FieldError is an alias to types.FieldError.
// Returned when a date, time or number field cannot be parsed.
type FieldError = types.FieldError

// ValidationError is an alias to types.ValidationError.
// Returned when a field parses but holds a rejected value.
type ValidationError = types.ValidationError

// Warning is an alias to types.Warning.
type Warning = types.Warning

// Sentinel errors, re-exported for errors.Is.
var (
	ErrInvalidVersion     = types.ErrInvalidVersion
	ErrInvalidUTF8        = types.ErrInvalidUTF8
	ErrNonPositiveRecords = types.ErrNonPositiveRecords
	ErrFractionalDuration = types.ErrFractionalDuration
)
