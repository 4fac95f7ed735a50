package edf

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodeText converts a field's bytes to a string.
//
// With latin1 set the bytes are read as ISO-8859-1, which maps every byte
// to a rune, so the result is always valid UTF-8. Otherwise the bytes must
// already be valid UTF-8; on failure the index of the first invalid byte is
// returned with ok false.
func decodeText(raw []byte, latin1 bool) (s string, invalidAt int, ok bool) {
	if latin1 {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", 0, false
		}
		return string(decoded), -1, true
	}

	if utf8.Valid(raw) {
		return string(raw), -1, true
	}
	return "", firstInvalid(raw), false
}

func firstInvalid(raw []byte) int {
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(raw)
}
