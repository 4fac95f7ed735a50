package edf

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/simonhull/edfmeta/internal/types"
)

// versionMarker is the only version field EDF allows.
const versionMarker = "0       "

// clipYear is the first year of the two-digit year window. Years 85-99
// map to the 1900s and 00-84 to the 2000s.
const clipYear = 1985

const (
	dateLayout = "02.01.06"
	timeLayout = "15.04.05"
)

// unknownRecords is the records field value for an unknown count.
const unknownRecords = -1

func validVersion(raw []byte) bool {
	return string(raw) == versionMarker
}

// parseStartDate parses a DD.MM.YY date with the 1985 clipping rule.
func parseStartDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}

	year := 1900 + t.Year()%100
	if year < clipYear {
		year += 100
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// clockEpoch is the date time.Parse assigns to a bare clock time.
var clockEpoch = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)

// leapSecond is the seconds suffix of a clock time on a leap second.
const leapSecond = ".60"

// parseStartTime parses an HH.MM.SS clock time. The result is an offset
// from midnight of January 1, year 0. A leap second (SS = 60) is carried
// into the following minute, which may be the next day.
func parseStartTime(s string) (time.Time, error) {
	if strings.HasSuffix(s, leapSecond) {
		t, err := time.Parse(timeLayout, strings.TrimSuffix(s, leapSecond)+".59")
		if err != nil {
			return time.Time{}, err
		}
		return t.Add(time.Second), nil
	}
	return time.Parse(timeLayout, s)
}

// combine joins a start date and clock time into one instant.
func combine(date, clock time.Time) time.Time {
	return date.Add(clock.Sub(clockEpoch))
}

func trimNumber(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func parseSize(s string) (uint64, error) {
	return strconv.ParseUint(trimNumber(s), 10, 64)
}

// parseRecords parses the number of data records. The -1 sentinel reports
// an unknown count; zero and other negative values are rejected.
func parseRecords(s string) (uint64, bool, error) {
	n, err := strconv.ParseInt(trimNumber(s), 10, 64)
	if err != nil {
		return 0, false, err
	}

	switch {
	case n == unknownRecords:
		return 0, false, nil
	case n > 0:
		return uint64(n), true, nil
	default:
		return 0, false, types.ErrNonPositiveRecords
	}
}

// parseDuration parses the duration of a data record in whole seconds.
//
// A decimal point is accepted only when everything after it parses as a
// uint8 equal to zero ("1.0", "1.000"). Non-zero fractions are rejected
// rather than rounded.
func parseDuration(s string) (uint64, error) {
	s = trimNumber(s)

	whole, fraction, found := strings.Cut(s, ".")
	if found {
		v, err := strconv.ParseUint(fraction, 10, 8)
		if err != nil {
			return 0, err
		}
		if v != 0 {
			return 0, types.ErrFractionalDuration
		}
	}

	return strconv.ParseUint(whole, 10, 64)
}

func parseSignals(s string) (uint32, error) {
	n, err := strconv.ParseUint(trimNumber(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
