package value

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/rangepick/pkg/dates"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

func TestNormalizeAbsent(t *testing.T) {
	_, _, ok, err := Normalize(dates.Day, Absent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected an absent value to report no range")
	}
}

func TestNormalizePoint(t *testing.T) {
	from, to, ok, err := Normalize(dates.Day, Point(time.Date(2023, time.June, 15, 14, 0, 0, 0, time.UTC)))
	if err != nil || !ok {
		t.Fatalf("unexpected error: %v", err)
	}
	if !from.Equal(day(2023, time.June, 15)) || !to.Equal(endOfDay(2023, time.June, 15)) {
		t.Fatalf("expected the enclosing day, got [%v, %v]", from, to)
	}
}

func TestNormalizePair(t *testing.T) {
	v := Pair(time.Date(2023, time.June, 30, 9, 0, 0, 0, time.UTC), time.Date(2023, time.June, 3, 9, 0, 0, 0, time.UTC))
	if !v.From().Before(v.To()) {
		t.Fatalf("expected pair to be ordered, got %v..%v", v.From(), v.To())
	}
	from, to, ok, err := Normalize(dates.Month, v)
	if err != nil || !ok {
		t.Fatalf("unexpected error: %v", err)
	}
	if !from.Equal(day(2023, time.June, 1)) || !to.Equal(endOfDay(2023, time.June, 30)) {
		t.Fatalf("unexpected normalized pair [%v, %v]", from, to)
	}
}

func TestNormalizeZeroInstantIsPresent(t *testing.T) {
	from, to, ok, err := Normalize(dates.Day, Point(time.Time{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a point at the zero instant to be present")
	}
	if !from.Equal(time.Time{}) || !to.After(from) {
		t.Fatalf("expected the first day, got [%v, %v]", from, to)
	}
}

func TestToArray(t *testing.T) {
	pair := Pair(day(2023, time.June, 3), day(2023, time.June, 9))
	arr, err := ToArray(dates.Day, pair)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !arr[0].Equal(pair.From()) || !arr[1].Equal(pair.To()) {
		t.Fatalf("expected pair unchanged, got %v", arr)
	}
	arr, _ = ToArray(dates.Day, Point(day(2023, time.June, 15)))
	if !arr[0].Equal(day(2023, time.June, 15)) || !arr[1].Equal(endOfDay(2023, time.June, 15)) {
		t.Fatalf("expected enclosing day, got %v", arr)
	}
}

func TestProcess(t *testing.T) {
	click := Point(day(2023, time.June, 15))

	start, err := Process(ReturnStart, dates.Day, click)
	if err != nil || !start.Equal(Point(day(2023, time.June, 15))) {
		t.Fatalf("unexpected start value %v (%v)", start, err)
	}
	end, err := Process(ReturnEnd, dates.Day, click)
	if err != nil || !end.Equal(Point(endOfDay(2023, time.June, 15))) {
		t.Fatalf("unexpected end value %v (%v)", end, err)
	}
	rng, err := Process(ReturnRange, dates.Day, click)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rng.IsPair() || !rng.From().Equal(day(2023, time.June, 15)) || !rng.To().Equal(endOfDay(2023, time.June, 15)) {
		t.Fatalf("unexpected range value %v", rng)
	}
	if _, err := Process("middle", dates.Day, click); !errors.Is(err, ErrInvalidReturnMode) {
		t.Fatalf("expected ErrInvalidReturnMode, got %v", err)
	}
}

func TestParseReturnMode(t *testing.T) {
	if m, err := ParseReturnMode("RANGE"); err != nil || m != ReturnRange {
		t.Fatalf("expected range, got %q (%v)", m, err)
	}
	if _, err := ParseReturnMode("both"); !errors.Is(err, ErrInvalidReturnMode) {
		t.Fatalf("expected ErrInvalidReturnMode, got %v", err)
	}
}

func TestParseAndString(t *testing.T) {
	v, err := Parse("2023-06-01..2023-06-30", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsPair() || v.String() != "2023-06-01..2023-06-30" {
		t.Fatalf("unexpected value %q", v.String())
	}
	v, err = Parse("2023-06-15", time.UTC)
	if err != nil || v.IsPair() || !v.From().Equal(day(2023, time.June, 15)) {
		t.Fatalf("unexpected point %v (%v)", v, err)
	}
	if v, _ := Parse("  ", time.UTC); !v.IsAbsent() {
		t.Fatalf("expected absent value")
	}
	if _, err := Parse("yesterday", time.UTC); err == nil {
		t.Fatalf("expected parse error")
	}
	if got := Point(endOfDay(2023, time.June, 15)).String(); got != "2023-06-15T23:59:59.999Z" {
		t.Fatalf("unexpected instant rendering %q", got)
	}
}

func TestProcessAbsentStaysAbsent(t *testing.T) {
	for _, mode := range []ReturnMode{ReturnStart, ReturnEnd, ReturnRange} {
		v, err := Process(mode, dates.Day, Absent())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", mode, err)
		}
		if !v.IsAbsent() {
			t.Fatalf("%s: expected an absent value, got %v", mode, v)
		}
	}
}
