// Package output provides output formatting utilities for edfinfo.
package output

import (
	"fmt"
	"io"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatText outputs the canonical header rendering.
	FormatText Format = "text"
	// FormatTable outputs data in a formatted table.
	FormatTable Format = "table"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs data as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a string into a Format, returning an error if invalid.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (valid: text, table, json, yaml)", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Printer handles formatted output to a writer.
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter creates a new Printer with the given options.
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{
		out:    out,
		format: format,
	}
}

// PrintFiles outputs decoded files in the configured format.
func (p *Printer) PrintFiles(files []FileView) error {
	switch p.format {
	case FormatText:
		for _, f := range files {
			if err := PrintText(p.out, f); err != nil {
				return err
			}
		}
		return nil
	case FormatTable:
		for i, f := range files {
			if i > 0 {
				_, _ = fmt.Fprintln(p.out)
			}
			if err := PrintTable(p.out, f); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		return PrintJSON(p.out, files)
	case FormatYAML:
		return PrintYAML(p.out, files)
	default:
		return fmt.Errorf("unknown format: %s", p.format)
	}
}

// Print outputs arbitrary data. Text and table formats fall back to
// fmt.Println.
func (p *Printer) Print(data any) error {
	switch p.format {
	case FormatJSON:
		return PrintJSON(p.out, data)
	case FormatYAML:
		return PrintYAML(p.out, data)
	default:
		_, err := fmt.Fprintln(p.out, data)
		return err
	}
}
