package edfmeta

import "log/slog"

// Option configures behavior when reading EDF headers.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := edfmeta.Open("sleep.edf",
//	    edfmeta.WithLatin1(),
//	    edfmeta.WithStrictParsing(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for reading headers.
type openOptions struct {
	logger         *slog.Logger
	latin1         bool // Decode text fields as ISO-8859-1
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{}
}

func applyOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLatin1 decodes the text fields as ISO-8859-1.
//
// EDF text fields are meant to be printable ASCII, but many recorders
// write Latin-1 names into the patient field. By default such bytes fail
// with an *EncodingError. With this option every byte is mapped to its
// Latin-1 character instead.
func WithLatin1() Option {
	return func(o *openOptions) {
		o.latin1 = true
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, Open reports inconsistencies such as a header size that does
// not match the signal count as warnings alongside the decoded header.
// With strict parsing enabled, the first warning becomes an error.
//
// Example:
//
//	file, err := edfmeta.Open("sleep.edf", edfmeta.WithStrictParsing())
//	// err != nil if ANY inconsistency is found
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithLogger sets the logger that receives per-field debug events.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}
