package rtp

import (
	"errors"
	"fmt"
)

var (
	ErrArity     = errors.New("rtp: field count mismatch")
	ErrKeyword   = errors.New("rtp: keyword mismatch")
	ErrChecksum  = errors.New("rtp: invalid checksum")
	ErrValue     = errors.New("rtp: invalid value")
	ErrCapacity  = errors.New("rtp: count exceeds reserved capacity")
	ErrDuplicate = errors.New("rtp: duplicate record")
)

// ArityError reports a line whose field count differs from the declared
// length of its schema.
type ArityError struct {
	Keyword  string
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("rtp: %s: number of fields is incorrect [expected: %d, actual: %d]", e.Keyword, e.Expected, e.Actual)
}

func (e *ArityError) Is(target error) bool { return target == ErrArity }

// KeywordError reports a field sequence handed to the wrong schema.
type KeywordError struct {
	Expected string
	Actual   string
}

func (e *KeywordError) Error() string {
	return fmt.Sprintf("rtp: keyword mismatch [expected: %s, actual: %s]", e.Expected, e.Actual)
}

func (e *KeywordError) Is(target error) bool { return target == ErrKeyword }

// ChecksumError reports a trailing crc field that is not a signed integer.
type ChecksumError struct {
	Keyword string
	Value   string
	Err     error
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("rtp: %s: checksum %q is not an integer", e.Keyword, e.Value)
}

func (e *ChecksumError) Is(target error) bool { return target == ErrChecksum }

func (e *ChecksumError) Unwrap() error { return e.Err }

// ValueError reports a mandatory count or region element that could not be
// parsed.
type ValueError struct {
	Keyword  string
	Field    string
	Position int
	Value    string
	Err      error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("rtp: %s: field %s at position %d: invalid value %q", e.Keyword, e.Field, e.Position, e.Value)
}

func (e *ValueError) Is(target error) bool { return target == ErrValue }

func (e *ValueError) Unwrap() error { return e.Err }

// CapacityError reports a count slot larger than the region it sizes.
type CapacityError struct {
	Keyword  string
	Field    string
	Count    int
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("rtp: %s: %s=%d exceeds capacity %d", e.Keyword, e.Field, e.Count, e.Capacity)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }

// DuplicateRecordError is raised in strict mode when a singular record kind
// appears more than once.
type DuplicateRecordError struct {
	Keyword   string
	FirstLine int
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("rtp: %s already defined on line %d", e.Keyword, e.FirstLine)
}

func (e *DuplicateRecordError) Is(target error) bool { return target == ErrDuplicate }

// LineError attaches the 1-based line number and keyword to a decode failure.
type LineError struct {
	Line    int
	Keyword string
	Err     error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Keyword, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ErrorKind classifies err into the short names used in CLI and log output.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrArity):
		return "arity"
	case errors.Is(err, ErrKeyword):
		return "keyword"
	case errors.Is(err, ErrChecksum):
		return "checksum"
	case errors.Is(err, ErrCapacity):
		return "capacity"
	case errors.Is(err, ErrValue):
		return "value"
	case errors.Is(err, ErrDuplicate):
		return "duplicate"
	default:
		return "other"
	}
}
