// Package binary provides sequential fixed-width field reading with offset
// tracking and contextual errors.
package binary

import (
	"io"

	"github.com/simonhull/edfmeta/internal/types"
)

// Reader reads consecutive fixed-width fields from a stream.
//
// Reader never seeks. Each field starts where the previous one ended, so
// the offset reported in errors is the number of bytes consumed so far.
type Reader struct {
	r      io.Reader
	path   string
	offset int64
}

// NewReader creates a new Reader positioned at offset 0 of r.
func NewReader(r io.Reader, path string) *Reader {
	return &Reader{
		r:    r,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (r *Reader) Path() string {
	return r.path
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadField reads exactly width bytes for the named field and advances the
// offset. A stream that ends early yields a *types.ReadError wrapping
// io.ErrUnexpectedEOF (or io.EOF when no byte of the field was available).
func (r *Reader) ReadField(width int, what string) ([]byte, error) {
	buf := make([]byte, width)
	n, err := io.ReadFull(r.r, buf)
	if err != nil {
		return nil, &types.ReadError{
			Path:   r.path,
			Field:  what,
			Offset: r.offset,
			Width:  width,
			Got:    n,
			Err:    err,
		}
	}

	r.offset += int64(width)
	return buf, nil
}
