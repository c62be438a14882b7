package dates

import (
	"fmt"
	"time"
)

// Resolution is the smallest step between two instants the picker tells
// apart. A period ends one Resolution before the next period starts.
const Resolution = time.Millisecond

// PeriodStart floors t to the start of the enclosing period of g, in t's
// location.
func PeriodStart(g Granularity, t time.Time) (time.Time, error) {
	loc := t.Location()
	switch g {
	case Century:
		return time.Date(firstYear(t.Year(), 100), time.January, 1, 0, 0, 0, 0, loc), nil
	case Decade:
		return time.Date(firstYear(t.Year(), 10), time.January, 1, 0, 0, 0, 0, loc), nil
	case Year:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc), nil
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc), nil
	case Day:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidGranularity, string(g))
	}
}

// NextPeriodStart returns the start of the period following the one that
// contains t.
func NextPeriodStart(g Granularity, t time.Time) (time.Time, error) {
	return Shift(g, t, 1)
}

// PeriodEnd returns the last instant of the period of g containing t.
func PeriodEnd(g Granularity, t time.Time) (time.Time, error) {
	next, err := NextPeriodStart(g, t)
	if err != nil {
		return time.Time{}, err
	}
	return next.Add(-Resolution), nil
}

// PeriodRange returns the inclusive start and end of the period of g
// containing t.
func PeriodRange(g Granularity, t time.Time) (time.Time, time.Time, error) {
	start, err := PeriodStart(g, t)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := PeriodEnd(g, start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Shift moves n periods of g away from the period containing t and returns
// the start of the period it lands on. Negative n moves backwards.
func Shift(g Granularity, t time.Time, n int) (time.Time, error) {
	start, err := PeriodStart(g, t)
	if err != nil {
		return time.Time{}, err
	}
	switch g {
	case Century:
		return start.AddDate(100*n, 0, 0), nil
	case Decade:
		return start.AddDate(10*n, 0, 0), nil
	case Year:
		return start.AddDate(n, 0, 0), nil
	case Month:
		return start.AddDate(0, n, 0), nil
	default:
		return start.AddDate(0, 0, n), nil
	}
}

// Contains reports whether t falls inside the period of g starting at start.
func Contains(g Granularity, start, t time.Time) bool {
	s, end, err := PeriodRange(g, start)
	if err != nil {
		return false
	}
	return !t.Before(s) && !t.After(end)
}

// firstYear returns the first year of the span of the given size containing
// year, with spans starting at years ending in 1 (2001, 2021).
func firstYear(year, span int) int {
	return floorDiv(year-1, span)*span + 1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
