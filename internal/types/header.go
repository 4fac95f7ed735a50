// Package types provides the core data structures for decoded EDF headers.
//
// This package defines the Header, File and Warning types along with the
// typed errors returned while decoding a header.
package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// HeaderSize is the width in bytes of the fixed EDF header prefix.
const HeaderSize = 256

// SignalHeaderSize is the width in bytes of each per-signal header block
// following the fixed prefix.
const SignalHeaderSize = 256

// StartTimeLayout renders StartTime the way the canonical header output does.
const StartTimeLayout = "2006-01-02 15:04:05"

// Header is the decoded fixed header of an EDF recording.
//
// A Header is produced once per parse and is never modified afterwards.
// Text fields keep their padding exactly as stored in the file.
type Header struct {
	StartTime    time.Time `json:"start_time" yaml:"start_time"`
	PatientInfo  string    `json:"patient_info" yaml:"patient_info"`
	RecordingID  string    `json:"recording_id" yaml:"recording_id"`
	Reserved     string    `json:"reserved" yaml:"reserved"`
	Size         uint64    `json:"size" yaml:"size"`
	Records      uint64    `json:"records,omitempty" yaml:"records,omitempty"`
	Duration     uint64    `json:"duration" yaml:"duration"`
	Signals      uint32    `json:"signals" yaml:"signals"`
	RecordsKnown bool      `json:"records_known" yaml:"records_known"`
}

// RecordCount returns the number of data records and whether the file
// declared it. An unknown count is stored as -1 in the file.
func (h Header) RecordCount() (uint64, bool) {
	return h.Records, h.RecordsKnown
}

// RecordDuration returns the duration of a single data record.
func (h Header) RecordDuration() time.Duration {
	return time.Duration(h.Duration) * time.Second
}

// maxDurationSeconds is the longest span a time.Duration can hold.
const maxDurationSeconds = uint64(math.MaxInt64 / int64(time.Second))

// TotalSeconds returns the length of the whole recording in seconds.
// It reports false when the record count is unknown. Both fields hold at
// most eight digits, so the product always fits in a uint64.
func (h Header) TotalSeconds() (uint64, bool) {
	if !h.RecordsKnown {
		return 0, false
	}
	return h.Records * h.Duration, true
}

// TotalDuration returns the length of the whole recording.
// It reports false when the record count is unknown or the length does
// not fit in a time.Duration (about 292 years); use TotalSeconds then.
func (h Header) TotalDuration() (time.Duration, bool) {
	if !h.RecordsKnown {
		return 0, false
	}
	if h.Duration != 0 && h.Records > maxDurationSeconds/h.Duration {
		return 0, false
	}
	return time.Duration(h.Records*h.Duration) * time.Second, true
}

// ExpectedSize returns the header length mandated by the format for the
// declared number of signals.
func (h Header) ExpectedSize() uint64 {
	return HeaderSize + SignalHeaderSize*uint64(h.Signals)
}

// Variant classifies the recording from the reserved field.
func (h Header) Variant() Variant {
	return DetectVariant(h.Reserved)
}

// String returns the canonical human-readable rendering of the header.
func (h Header) String() string {
	records := "-1"
	if h.RecordsKnown {
		records = strconv.FormatUint(h.Records, 10)
	}

	var b strings.Builder
	b.WriteString("\n## Header\n")
	b.WriteString(h.PatientInfo)
	fmt.Fprintf(&b, "\nRecording ID: %s", h.RecordingID)
	fmt.Fprintf(&b, "\nStart Time: %s", h.StartTime.Format(StartTimeLayout))
	fmt.Fprintf(&b, "\nSize of header: %d B", h.Size)
	fmt.Fprintf(&b, "\nReserved: %s", h.Reserved)
	fmt.Fprintf(&b, "\n%s data records", records)
	fmt.Fprintf(&b, "\n%d seconds", h.Duration)
	fmt.Fprintf(&b, "\n%d signals", h.Signals)
	return b.String()
}

// File is a decoded EDF file on disk.
type File struct {
	Path     string    `json:"path" yaml:"path"`
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Header   Header    `json:"header" yaml:"header"`
	Size     int64     `json:"size" yaml:"size"`
}
