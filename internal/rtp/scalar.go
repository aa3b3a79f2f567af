package rtp

import (
	"strconv"
	"strings"
)

// OptionalUint parses a non-negative base-10 integer. Blank text, a sign, or
// any other non-digit content yields nil. Negative values are treated as
// absent rather than malformed to stay compatible with existing exports.
func OptionalUint(raw string) *uint32 {
	t := strings.TrimSpace(raw)
	if t == "" || !isDigits(t) {
		return nil
	}
	v, err := strconv.ParseUint(t, 10, 32)
	if err != nil {
		return nil
	}
	u := uint32(v)
	return &u
}

// OptionalFloat parses a decimal floating point literal. Blank or
// unparseable text yields nil.
func OptionalFloat(raw string) *float64 {
	t := strings.TrimSpace(raw)
	if t == "" || !isDecimalLiteral(t) {
		return nil
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return nil
	}
	return &v
}

// RequiredInt parses a mandatory signed 32-bit integer such as a record
// checksum. The text is parsed as is; surrounding whitespace is an error.
func RequiredInt(raw string) (int32, error) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// RequiredUint parses a mandatory count. Unlike OptionalUint, blank or
// negative text is an error.
func RequiredUint(raw string) (uint32, error) {
	t := strings.TrimSpace(raw)
	if !isDigits(t) {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseUint(t, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// RequiredFloat parses a mandatory real, used for leaf and shape coordinates
// inside the used part of a region.
func RequiredFloat(raw string) (float64, error) {
	v := OptionalFloat(raw)
	if v == nil {
		return 0, strconv.ErrSyntax
	}
	return *v, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isDecimalLiteral rejects the non-decimal spellings strconv accepts
// (inf, nan, hex floats, underscores) so only plain numbers count.
func isDecimalLiteral(s string) bool {
	digits := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		default:
			return false
		}
	}
	return digits
}
