package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/simonhull/edfmeta/internal/types"
)

// FileView is the structured rendering of one decoded file.
type FileView struct {
	Path          string          `json:"path" yaml:"path"`
	Variant       string          `json:"variant" yaml:"variant"`
	PatientInfo   string          `json:"patient_info" yaml:"patient_info"`
	RecordingID   string          `json:"recording_id" yaml:"recording_id"`
	StartTime     string          `json:"start_time" yaml:"start_time"`
	Reserved      string          `json:"reserved" yaml:"reserved"`
	Warnings      []types.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	HeaderBytes   uint64          `json:"header_bytes" yaml:"header_bytes"`
	FileBytes     int64           `json:"file_bytes" yaml:"file_bytes"`
	Records       int64           `json:"records" yaml:"records"`
	RecordSeconds uint64          `json:"record_seconds" yaml:"record_seconds"`
	TotalSeconds  int64           `json:"total_seconds" yaml:"total_seconds"`
	Signals       uint32          `json:"signals" yaml:"signals"`

	header types.Header
}

// NewFileView builds a view of f. Text fields are trimmed of padding;
// unknown record counts and totals are reported as -1.
func NewFileView(f *types.File) FileView {
	h := f.Header

	v := FileView{
		Path:          f.Path,
		Variant:       h.Variant().String(),
		PatientInfo:   strings.TrimSpace(h.PatientInfo),
		RecordingID:   strings.TrimSpace(h.RecordingID),
		StartTime:     h.StartTime.Format(types.StartTimeLayout),
		Reserved:      strings.TrimSpace(h.Reserved),
		Warnings:      f.Warnings,
		HeaderBytes:   h.Size,
		FileBytes:     f.Size,
		Records:       -1,
		RecordSeconds: h.Duration,
		TotalSeconds:  -1,
		Signals:       h.Signals,
		header:        h,
	}

	if n, known := h.RecordCount(); known {
		v.Records = int64(n)
	}
	if total, known := h.TotalSeconds(); known {
		v.TotalSeconds = int64(total)
	}

	return v
}

// Headers implements TableRenderer.
func (v FileView) Headers() []string {
	return []string{"Field", "Value"}
}

// Rows implements TableRenderer.
func (v FileView) Rows() [][]string {
	records := "unknown"
	total := "unknown"
	if v.Records >= 0 {
		records = humanize.Comma(v.Records)
		total = formatSeconds(v.TotalSeconds)
	}

	rows := [][]string{
		{"File", v.Path},
		{"Format", v.Variant},
		{"Patient", v.PatientInfo},
		{"Recording", v.RecordingID},
		{"Start", v.StartTime},
		{"Header size", fmt.Sprintf("%s (%d B)", humanize.IBytes(v.HeaderBytes), v.HeaderBytes)},
		{"File size", fileSize(v.FileBytes)},
		{"Reserved", v.Reserved},
		{"Data records", records},
		{"Record duration", formatSeconds(int64(v.RecordSeconds))},
		{"Total duration", total},
		{"Signals", strconv.FormatUint(uint64(v.Signals), 10)},
	}

	for _, w := range v.Warnings {
		rows = append(rows, []string{"Warning", w.String()})
	}

	return rows
}

// PrintText writes the canonical header rendering of v.
func PrintText(w io.Writer, v FileView) error {
	_, err := fmt.Fprintf(w, "%s%s\n", v.Path, v.header)
	return err
}

func fileSize(n int64) string {
	if n < 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(n))
}

// formatSeconds renders s as 1h2m3s, with plain seconds below a minute.
func formatSeconds(s int64) string {
	if s < 60 {
		return fmt.Sprintf("%d s", s)
	}
	h, m, sec := s/3600, (s%3600)/60, s%60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh%02dm%02ds", h, m, sec)
	default:
		return fmt.Sprintf("%dm%02ds", m, sec)
	}
}
