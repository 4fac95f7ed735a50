// Package edf decodes the fixed header of European Data Format recordings.
package edf

import (
	"time"

	"github.com/simonhull/edfmeta/internal/types"
)

// Field names, as they appear in errors and logs.
const (
	FieldVersion     = "version"
	FieldPatientInfo = "patient info"
	FieldRecordingID = "recording id"
	FieldStartDate   = "start date"
	FieldStartTime   = "start time"
	FieldSize        = "header size"
	FieldReserved    = "reserved"
	FieldRecords     = "number of data records"
	FieldDuration    = "data record duration"
	FieldSignals     = "number of signals"
)

// state accumulates decoded values while the fields are read.
type state struct {
	header types.Header
	date   time.Time
	clock  time.Time
}

// field is one fixed-width entry of the header.
type field struct {
	name  string
	width int
	// text fields are decoded to a string before being handed to decode.
	// The version field is checked on its raw bytes.
	text   bool
	decode func(st *state, value string) error
}

// layout lists the header fields in file order. Offsets are cumulative.
var layout = []field{
	{name: FieldVersion, width: 8},
	{name: FieldPatientInfo, width: 80, text: true, decode: func(st *state, v string) error {
		st.header.PatientInfo = v
		return nil
	}},
	{name: FieldRecordingID, width: 80, text: true, decode: func(st *state, v string) error {
		st.header.RecordingID = v
		return nil
	}},
	{name: FieldStartDate, width: 8, text: true, decode: func(st *state, v string) (err error) {
		st.date, err = parseStartDate(v)
		return err
	}},
	{name: FieldStartTime, width: 8, text: true, decode: func(st *state, v string) (err error) {
		st.clock, err = parseStartTime(v)
		return err
	}},
	{name: FieldSize, width: 8, text: true, decode: func(st *state, v string) (err error) {
		st.header.Size, err = parseSize(v)
		return err
	}},
	{name: FieldReserved, width: 44, text: true, decode: func(st *state, v string) error {
		st.header.Reserved = v
		return nil
	}},
	{name: FieldRecords, width: 8, text: true, decode: func(st *state, v string) (err error) {
		st.header.Records, st.header.RecordsKnown, err = parseRecords(v)
		return err
	}},
	{name: FieldDuration, width: 8, text: true, decode: func(st *state, v string) (err error) {
		st.header.Duration, err = parseDuration(v)
		return err
	}},
	{name: FieldSignals, width: 4, text: true, decode: func(st *state, v string) (err error) {
		st.header.Signals, err = parseSignals(v)
		return err
	}},
}

// FieldSpec describes the position of a header field.
type FieldSpec struct {
	Name   string
	Offset int64
	Width  int
}

// Layout returns the header fields in file order with their offsets.
func Layout() []FieldSpec {
	specs := make([]FieldSpec, 0, len(layout))
	var offset int64
	for _, f := range layout {
		specs = append(specs, FieldSpec{Name: f.name, Offset: offset, Width: f.width})
		offset += int64(f.width)
	}
	return specs
}

// offsetOf returns the offset of the named field, or -1 if there is none.
func offsetOf(name string) int64 {
	for _, spec := range Layout() {
		if spec.Name == name {
			return spec.Offset
		}
	}
	return -1
}
