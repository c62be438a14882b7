package value

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/rangepick/pkg/dates"
)

// ErrInvalidReturnMode is returned when a selection is shaped with an
// unknown mode.
var ErrInvalidReturnMode = errors.New("invalid return mode")

// ReturnMode controls how a committed selection is reported.
type ReturnMode string

const (
	// ReturnStart reports the start of the selected period.
	ReturnStart ReturnMode = "start"
	// ReturnEnd reports the end of the selected period.
	ReturnEnd ReturnMode = "end"
	// ReturnRange reports the (from, to) pair.
	ReturnRange ReturnMode = "range"
)

// ParseReturnMode validates a return mode token.
func ParseReturnMode(s string) (ReturnMode, error) {
	m := ReturnMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ReturnStart, ReturnEnd, ReturnRange:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidReturnMode, s)
}

// Process shapes v according to mode at valueType resolution. An absent v
// stays absent for every valid mode.
func Process(mode ReturnMode, valueType dates.Granularity, v Value) (Value, error) {
	switch mode {
	case ReturnStart:
		from, _, ok, err := Normalize(valueType, v)
		if err != nil || !ok {
			return Value{}, err
		}
		return Point(from), nil
	case ReturnEnd:
		_, to, ok, err := Normalize(valueType, v)
		if err != nil || !ok {
			return Value{}, err
		}
		return Point(to), nil
	case ReturnRange:
		if v.IsAbsent() {
			return Value{}, nil
		}
		arr, err := ToArray(valueType, v)
		if err != nil {
			return Value{}, err
		}
		return Pair(arr[0], arr[1]), nil
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidReturnMode, string(mode))
	}
}

func (m ReturnMode) String() string { return string(m) }
