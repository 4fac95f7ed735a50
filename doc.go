// Package edfmeta reads the fixed header of European Data Format (EDF)
// biosignal recordings.
//
// The header holds the recording's metadata: patient and recording
// identification, start time and the layout of the data records that
// follow. edfmeta decodes and validates it without touching the signal
// data itself.
//
// # Quick Start
//
//	file, err := edfmeta.Open("sleep.edf")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(file.Header.StartTime)
//	if n, ok := file.Header.RecordCount(); ok {
//		fmt.Printf("%d records of %s\n", n, file.Header.RecordDuration())
//	}
//
// Headers can also be read from any io.Reader positioned at the start of
// a file:
//
//	h, err := edfmeta.ReadHeader(r)
//
// # Header Layout
//
// The fixed header is 256 bytes of space-padded ASCII:
//
//	version       8   "0" followed by seven spaces
//	patient      80   free text
//	recording    80   free text
//	start date    8   dd.mm.yy
//	start time    8   hh.mm.ss
//	header size   8   bytes
//	reserved     44   "EDF+C"/"EDF+D" for EDF+ files
//	records       8   number of data records, -1 if unknown
//	duration      8   seconds per data record
//	signals       4   number of signals
//
// Two-digit years are clipped at 1985: 85-99 are read as 1985-1999 and
// 00-84 as 2000-2084.
//
// # Error Handling
//
// Every failure aborts the parse; no partial header is ever returned.
// Errors are typed so callers can tell them apart:
//
//   - *ReadError: the file ended before a field could be read
//   - *EncodingError: a text field is not valid UTF-8 (see WithLatin1)
//   - *InvalidVersionError: the file is not an EDF file
//   - *FieldError: a date, time or number field is malformed
//   - *ValidationError: a zero or negative record count, or a
//     fractional record duration
//
// Fractional record durations such as "0.5" are not supported and fail
// with ErrFractionalDuration rather than being rounded.
//
// Headers that decode cleanly but disagree with their file are reported
// as warnings on File.Warnings:
//
//	for _, w := range file.Warnings {
//		log.Printf("Warning: %s", w)
//	}
package edfmeta
