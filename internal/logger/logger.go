// Package logger builds the structured logger used by the edfinfo CLI.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Config holds logger configuration
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // text, json
	Output string // stdout, stderr, or file path
}

// ANSI colours for level names in text output.
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// ParseLevel converts a level name to a slog.Level. Unknown names map to
// INFO and report false.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO", "":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a logger from cfg. The returned closer releases the log file
// when Output names one; it is a no-op otherwise.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	level, ok := ParseLevel(cfg.Level)
	if !ok {
		return nil, nil, fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", cfg.Level)
	}

	var (
		out    io.Writer
		closer io.Closer = nopCloser{}
		color  bool
	)

	switch strings.ToLower(cfg.Output) {
	case "stderr", "":
		out = os.Stderr
		color = isatty.IsTerminal(os.Stderr.Fd())
	case "stdout":
		out = os.Stdout
		color = isatty.IsTerminal(os.Stdout.Fd())
	default:
		// Assume it's a file path
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", cfg.Output, err)
		}
		out = f
		closer = f
	}

	handler, err := newHandler(out, cfg.Format, level, color)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	return slog.New(handler), closer, nil
}

// NewWithWriter creates a logger writing to w. Colour is enabled only when
// w is a terminal.
func NewWithWriter(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, ok := ParseLevel(level)
	if !ok {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	handler, err := newHandler(w, format, lvl, color)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

func newHandler(w io.Writer, format string, level slog.Level, color bool) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "text", "":
		if color {
			opts.ReplaceAttr = colorizeLevel
		}
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (valid: text, json)", format)
	}
}

// colorizeLevel wraps the level name in an ANSI colour.
func colorizeLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}

	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	color := colorBlue
	switch {
	case level < slog.LevelInfo:
		color = colorGray
	case level >= slog.LevelError:
		color = colorRed
	case level >= slog.LevelWarn:
		color = colorYellow
	}
	return slog.String(a.Key, color+level.String()+colorReset)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
