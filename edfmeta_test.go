package edfmeta_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/edfmeta"
)

// field pads s with spaces to width bytes.
func field(s string, width int) string {
	return s + strings.Repeat(" ", width-len(s))
}

// buildHeader returns a 256-byte header with the given record count,
// duration and signal count.
func buildHeader(records, duration, signals string) []byte {
	var b strings.Builder
	b.WriteString(field("0", 8))
	b.WriteString(field("PAT1", 80))
	b.WriteString(field("REC1", 80))
	b.WriteString("02.03.95")
	b.WriteString("10.00.00")
	b.WriteString(field("256", 8))
	b.WriteString(field("", 44))
	b.WriteString(field(records, 8))
	b.WriteString(field(duration, 8))
	b.WriteString(field(signals, 4))
	return []byte(b.String())
}

// writeEDF writes data to a temporary .edf file and returns its path.
func writeEDF(t testing.TB, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.edf")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadHeader_EndToEnd(t *testing.T) {
	h, err := edfmeta.ReadHeader(bytes.NewReader(buildHeader("-1", "1", "4")))
	require.NoError(t, err)

	assert.Equal(t, time.Date(1995, 3, 2, 10, 0, 0, 0, time.UTC), h.StartTime)
	assert.True(t, strings.HasPrefix(h.PatientInfo, "PAT1"))
	assert.Len(t, h.PatientInfo, 80)
	assert.True(t, strings.HasPrefix(h.RecordingID, "REC1"))
	assert.Equal(t, uint64(256), h.Size)
	assert.Equal(t, uint64(1), h.Duration)
	assert.Equal(t, uint32(4), h.Signals)

	_, known := h.RecordCount()
	assert.False(t, known)

	_, ok := h.TotalDuration()
	assert.False(t, ok)
}

func TestReadHeader_KnownRecords(t *testing.T) {
	h, err := edfmeta.ReadHeader(bytes.NewReader(buildHeader("150", "30", "4")))
	require.NoError(t, err)

	n, known := h.RecordCount()
	assert.True(t, known)
	assert.Equal(t, uint64(150), n)

	total, ok := h.TotalDuration()
	assert.True(t, ok)
	assert.Equal(t, 75*time.Minute, total)
	assert.Equal(t, 30*time.Second, h.RecordDuration())
}

func TestReadHeader_LongRecording(t *testing.T) {
	tests := []struct {
		records, duration string
		seconds           uint64
	}{
		{"3000000", "3600", 10800000000},
		{"99999999", "99999999", 9999999800000001},
	}

	for _, tt := range tests {
		h, err := edfmeta.ReadHeader(bytes.NewReader(buildHeader(tt.records, tt.duration, "4")))
		require.NoError(t, err)

		secs, ok := h.TotalSeconds()
		assert.True(t, ok)
		assert.Equal(t, tt.seconds, secs)

		// Too long for time.Duration: reported as unavailable, never wrapped.
		_, ok = h.TotalDuration()
		assert.False(t, ok, "records=%s duration=%s", tt.records, tt.duration)
	}
}

func TestReadHeader_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		target error
	}{
		{"zero records", buildHeader("0", "1", "4"), edfmeta.ErrNonPositiveRecords},
		{"negative records", buildHeader("-5", "1", "4"), edfmeta.ErrNonPositiveRecords},
		{"fractional duration", buildHeader("-1", "1.5", "4"), edfmeta.ErrFractionalDuration},
		{"wrong version", append([]byte("1"), buildHeader("-1", "1", "4")[1:]...), edfmeta.ErrInvalidVersion},
		{"truncated", buildHeader("-1", "1", "4")[:100], io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := edfmeta.ReadHeader(bytes.NewReader(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestReadHeader_ErrorTypes(t *testing.T) {
	_, err := edfmeta.ReadHeader(bytes.NewReader(buildHeader("0", "1", "4")))
	var verr *edfmeta.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, int64(236), verr.Offset)

	_, err = edfmeta.ReadHeader(bytes.NewReader(buildHeader("x", "1", "4")))
	var ferr *edfmeta.FieldError
	require.ErrorAs(t, err, &ferr)

	_, err = edfmeta.ReadHeader(bytes.NewReader(nil))
	var rerr *edfmeta.ReadError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "version", rerr.Field)
}

func TestReadHeader_Latin1(t *testing.T) {
	data := buildHeader("-1", "1", "4")
	data[8] = 0xC9 // É

	_, err := edfmeta.ReadHeader(bytes.NewReader(data))
	var eerr *edfmeta.EncodingError
	require.ErrorAs(t, err, &eerr)
	assert.ErrorIs(t, err, edfmeta.ErrInvalidUTF8)

	h, err := edfmeta.ReadHeader(bytes.NewReader(data), edfmeta.WithLatin1())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h.PatientInfo, "ÉAT1"))
}

func TestOpen(t *testing.T) {
	path := writeEDF(t, buildHeader("-1", "1", "0"))

	file, err := edfmeta.Open(path)
	require.NoError(t, err)

	assert.Equal(t, path, file.Path)
	assert.Equal(t, int64(256), file.Size)
	assert.Empty(t, file.Warnings)
	assert.Equal(t, edfmeta.VariantEDF, file.Header.Variant())
}

func TestOpen_FileNotFound(t *testing.T) {
	_, err := edfmeta.Open("/nonexistent/path.edf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpen_SizeMismatchWarning(t *testing.T) {
	// 4 signals need a 1280 byte header, but 256 is declared
	path := writeEDF(t, buildHeader("-1", "1", "4"))

	file, err := edfmeta.Open(path)
	require.NoError(t, err)
	require.Len(t, file.Warnings, 1)
	assert.Equal(t, "header", file.Warnings[0].Stage)

	file, err = edfmeta.Open(path, edfmeta.WithIgnoreWarnings())
	require.NoError(t, err)
	assert.Empty(t, file.Warnings)

	_, err = edfmeta.Open(path, edfmeta.WithStrictParsing())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict parsing failed")
}

func TestCheck(t *testing.T) {
	h, err := edfmeta.ReadHeader(bytes.NewReader(buildHeader("-1", "1", "0")))
	require.NoError(t, err)

	assert.Empty(t, edfmeta.Check(h, -1))
	assert.Len(t, edfmeta.Check(h, 100), 1)
}

func TestHeader_String(t *testing.T) {
	h, err := edfmeta.ReadHeader(bytes.NewReader(buildHeader("-1", "1", "4")))
	require.NoError(t, err)

	want := "\n## Header\n" + field("PAT1", 80) +
		"\nRecording ID: " + field("REC1", 80) +
		"\nStart Time: 1995-03-02 10:00:00" +
		"\nSize of header: 256 B" +
		"\nReserved: " + field("", 44) +
		"\n-1 data records" +
		"\n1 seconds" +
		"\n4 signals"
	assert.Equal(t, want, h.String())

	h, err = edfmeta.ReadHeader(bytes.NewReader(buildHeader("150", "1", "4")))
	require.NoError(t, err)
	assert.Contains(t, h.String(), "\n150 data records\n")
}

func TestGetVersionInfo(t *testing.T) {
	info := edfmeta.GetVersionInfo()
	assert.Equal(t, edfmeta.Version, info.Version)
	assert.Equal(t, edfmeta.Version, edfmeta.GetVersion())
	assert.NotEmpty(t, info.GoVersion)
}
