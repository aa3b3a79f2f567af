package rtp

import (
	"fmt"
	"strings"
)

// Rotation is the direction of a gantry, collimator or couch movement.
type Rotation int

const (
	Clockwise Rotation = iota + 1
	CounterClockwise
)

// ParseRotation matches value case-insensitively against the rotation
// vocabulary: cw/clockwise and cc/counterclockwise. Whitespace is not
// trimmed.
func ParseRotation(value string) (Rotation, bool) {
	switch strings.ToLower(value) {
	case "cw", "clockwise":
		return Clockwise, true
	case "cc", "counterclockwise":
		return CounterClockwise, true
	default:
		return 0, false
	}
}

func (r Rotation) String() string {
	switch r {
	case Clockwise:
		return "CW"
	case CounterClockwise:
		return "CC"
	default:
		return "NONE"
	}
}

func (r Rotation) MarshalText() ([]byte, error) {
	if r != Clockwise && r != CounterClockwise {
		return nil, fmt.Errorf("rtp: invalid rotation %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rotation) UnmarshalText(text []byte) error {
	parsed, ok := ParseRotation(string(text))
	if !ok {
		return fmt.Errorf("rtp: unknown rotation %q", string(text))
	}
	*r = parsed
	return nil
}
