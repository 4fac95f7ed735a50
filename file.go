package edfmeta

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/edfmeta/internal/edf"
)

// streamName identifies headers read from a bare io.Reader in errors.
const streamName = "<stream>"

// ReadHeader decodes the fixed header from r.
//
// r must be positioned at the start of an EDF file. On success exactly
// HeaderSize bytes have been consumed; the per-signal headers and data
// records that follow are left unread.
//
// Any failure aborts the whole parse and no partial header is returned.
// Errors are one of *ReadError, *EncodingError, *InvalidVersionError,
// *FieldError or *ValidationError.
//
// Example:
//
//	h, err := edfmeta.ReadHeader(bytes.NewReader(data))
//	if err != nil {
//		return err
//	}
//	fmt.Println(h.StartTime)
func ReadHeader(r io.Reader, opts ...Option) (Header, error) {
	return readHeader(r, streamName, applyOptions(opts))
}

func readHeader(r io.Reader, path string, options *openOptions) (Header, error) {
	return edf.Parse(r, path, edf.Options{
		Latin1: options.latin1,
		Logger: options.logger,
	})
}

// Open opens an EDF file and decodes its header.
//
// The file is closed before Open returns. Inconsistencies between the
// header and the file, such as a declared header size that does not fit the
// number of signals, are reported in File.Warnings.
//
// Example:
//
//	file, err := edfmeta.Open("sleep.edf")
//	if err != nil {
//		return err
//	}
//	fmt.Print(file.Header)
func Open(path string, opts ...Option) (*File, error) {
	options := applyOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return openReader(f, stat.Size(), path, options)
}

// openReader decodes a header from an already opened source (internal, for testing)
func openReader(r io.Reader, size int64, path string, options *openOptions) (*File, error) {
	header, err := readHeader(r, path, options)
	if err != nil {
		return nil, err
	}

	file := &File{
		Path:   path,
		Size:   size,
		Header: header,
	}

	if !options.ignoreWarnings {
		file.Warnings = edf.Check(header, size)
	}

	if options.strictParsing && len(file.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0])
	}

	return file, nil
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before the file is opened. Reading the header
// itself is a single short blocking read and is not interrupted.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany decodes the headers of multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, no results are returned.
//
// Example:
//
//	files, err := edfmeta.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %d signals\n", f.Path, f.Header.Signals)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			file, err := OpenContext(ctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Check compares a decoded header with the size of the file it came from.
// Pass a negative fileSize when the size is unknown.
func Check(h Header, fileSize int64) []Warning {
	return edf.Check(h, fileSize)
}
