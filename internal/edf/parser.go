package edf

import (
	"errors"
	"io"
	"log/slog"

	"github.com/simonhull/edfmeta/internal/binary"
	"github.com/simonhull/edfmeta/internal/types"
)

// Options controls how header fields are decoded.
type Options struct {
	// Logger receives per-field debug events. Nil disables logging.
	Logger *slog.Logger
	// Latin1 decodes text fields as ISO-8859-1 instead of requiring UTF-8.
	Latin1 bool
}

// Parse reads the fixed header from r, which must be positioned at the
// start of the file.
//
// Fields are read in file order and the first failure ends the parse; no
// partial header is returned. On success exactly types.HeaderSize bytes
// have been consumed from r.
func Parse(r io.Reader, path string, opts Options) (types.Header, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	br := binary.NewReader(r, path)
	st := &state{}

	for _, f := range layout {
		offset := br.Offset()

		raw, err := br.ReadField(f.width, f.name)
		if err != nil {
			return types.Header{}, err
		}

		if !f.text {
			if !validVersion(raw) {
				return types.Header{}, &types.InvalidVersionError{Path: br.Path(), Got: raw}
			}
			log.Debug("decoded header field", "path", br.Path(), "field", f.name, "offset", offset)
			continue
		}

		value, invalidAt, ok := decodeText(raw, opts.Latin1)
		if !ok {
			return types.Header{}, &types.EncodingError{
				Path:   br.Path(),
				Field:  f.name,
				Offset: offset + int64(invalidAt),
			}
		}

		if err := f.decode(st, value); err != nil {
			return types.Header{}, fieldError(br.Path(), f.name, offset, value, err)
		}

		log.Debug("decoded header field", "path", br.Path(), "field", f.name, "offset", offset)
	}

	st.header.StartTime = combine(st.date, st.clock)

	log.Debug("decoded header",
		"path", br.Path(),
		"start", st.header.StartTime,
		"signals", st.header.Signals,
		"records_known", st.header.RecordsKnown,
	)

	return st.header, nil
}

// fieldError separates values the decoder rejects from text it could not
// parse at all.
func fieldError(path, name string, offset int64, value string, err error) error {
	if errors.Is(err, types.ErrNonPositiveRecords) || errors.Is(err, types.ErrFractionalDuration) {
		return &types.ValidationError{
			Path:   path,
			Field:  name,
			Offset: offset,
			Value:  value,
			Err:    err,
		}
	}
	return &types.FieldError{
		Path:   path,
		Field:  name,
		Offset: offset,
		Value:  value,
		Err:    err,
	}
}
