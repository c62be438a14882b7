// Package value normalizes externally supplied picker values into a
// canonical (from, to) pair and shapes committed selections for callers.
package value

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/rangepick/pkg/dates"
)

type kind int

const (
	kindAbsent kind = iota
	kindPoint
	kindPair
)

// Value is either absent, a single instant, or an ordered pair of instants.
// The zero Value is absent.
type Value struct {
	kind kind
	from time.Time
	to   time.Time
}

// Absent returns the empty value.
func Absent() Value { return Value{} }

// Point returns a single-instant value.
func Point(t time.Time) Value {
	return Value{kind: kindPoint, from: t, to: t}
}

// Pair returns a range value. The arguments are ordered so From <= To.
func Pair(from, to time.Time) Value {
	if to.Before(from) {
		from, to = to, from
	}
	return Value{kind: kindPair, from: from, to: to}
}

// IsAbsent reports whether no value was supplied.
func (v Value) IsAbsent() bool { return v.kind == kindAbsent }

// IsPair reports whether v is a range.
func (v Value) IsPair() bool { return v.kind == kindPair }

// From returns the first instant (the point itself for single values).
func (v Value) From() time.Time { return v.from }

// To returns the last instant (the point itself for single values).
func (v Value) To() time.Time { return v.to }

// Equal reports whether both values have the same shape and instants.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.from.Equal(o.from) && v.to.Equal(o.to)
}

// Normalize expands v to the canonical (from, to) pair at valueType
// resolution. ok is false for an absent value, and from and to are then
// meaningless.
func Normalize(valueType dates.Granularity, v Value) (from, to time.Time, ok bool, err error) {
	switch v.kind {
	case kindAbsent:
		return time.Time{}, time.Time{}, false, nil
	case kindPair:
		if from, _, err = dates.PeriodRange(valueType, v.from); err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		if _, to, err = dates.PeriodRange(valueType, v.to); err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		return from, to, true, nil
	default:
		if from, to, err = dates.PeriodRange(valueType, v.from); err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		return from, to, true, nil
	}
}

// ToArray returns a pair unchanged and otherwise the enclosing period of the
// point at valueType resolution.
func ToArray(valueType dates.Granularity, v Value) ([2]time.Time, error) {
	switch v.kind {
	case kindPair:
		return [2]time.Time{v.from, v.to}, nil
	case kindAbsent:
		return [2]time.Time{}, nil
	}
	from, to, err := dates.PeriodRange(valueType, v.from)
	if err != nil {
		return [2]time.Time{}, err
	}
	return [2]time.Time{from, to}, nil
}

// DateLayout is the layout used to read and print values on the command line.
const DateLayout = "2006-01-02"

const rangeSep = ".."

// Parse reads "", "2023-06-15" or "2023-06-01..2023-06-30" in loc.
func Parse(s string, loc *time.Location) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Absent(), nil
	}
	if from, to, ok := strings.Cut(s, rangeSep); ok {
		a, err := parseInstant(from, loc)
		if err != nil {
			return Value{}, err
		}
		b, err := parseInstant(to, loc)
		if err != nil {
			return Value{}, err
		}
		return Pair(a, b), nil
	}
	t, err := parseInstant(s, loc)
	if err != nil {
		return Value{}, err
	}
	return Point(t), nil
}

func parseInstant(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s or RFC 3339", s, DateLayout)
	}
	return t.In(loc), nil
}

// String renders v in the form accepted by Parse. Instants that are not at
// midnight are printed in RFC 3339 with milliseconds.
func (v Value) String() string {
	switch v.kind {
	case kindAbsent:
		return ""
	case kindPair:
		return formatInstant(v.from) + rangeSep + formatInstant(v.to)
	}
	return formatInstant(v.from)
}

func formatInstant(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(DateLayout)
	}
	return t.Format("2006-01-02T15:04:05.000Z07:00")
}
