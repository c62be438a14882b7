package dates

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodStart(t *testing.T) {
	at := time.Date(2023, time.June, 15, 13, 45, 12, 500, time.UTC)
	cases := []struct {
		g    Granularity
		want time.Time
	}{
		{Century, date(2001, time.January, 1)},
		{Decade, date(2021, time.January, 1)},
		{Year, date(2023, time.January, 1)},
		{Month, date(2023, time.June, 1)},
		{Day, date(2023, time.June, 15)},
	}
	for _, tc := range cases {
		got, err := PeriodStart(tc.g, at)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.g, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.g, tc.want, got)
		}
	}
}

func TestPeriodStartSpanBoundaries(t *testing.T) {
	got, _ := PeriodStart(Century, date(2000, time.December, 31))
	if want := date(1901, time.January, 1); !got.Equal(want) {
		t.Fatalf("expected year 2000 in century %v, got %v", want, got)
	}
	got, _ = PeriodStart(Decade, date(2030, time.July, 4))
	if want := date(2021, time.January, 1); !got.Equal(want) {
		t.Fatalf("expected year 2030 in decade %v, got %v", want, got)
	}
	got, _ = PeriodStart(Decade, date(2031, time.January, 1))
	if want := date(2031, time.January, 1); !got.Equal(want) {
		t.Fatalf("expected decade %v, got %v", want, got)
	}
}

func TestPeriodStartIdempotent(t *testing.T) {
	instants := []time.Time{
		time.Date(1999, time.December, 31, 23, 59, 59, 999, time.UTC),
		time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2101, time.January, 1, 0, 0, 0, 0, time.FixedZone("x", 5*3600)),
	}
	for _, g := range all {
		for _, at := range instants {
			once, err := PeriodStart(g, at)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			twice, _ := PeriodStart(g, once)
			if !once.Equal(twice) {
				t.Fatalf("%s: floor not idempotent for %v: %v != %v", g, at, once, twice)
			}
		}
	}
}

func TestPeriodRangeAgreesWithStart(t *testing.T) {
	at := time.Date(2024, time.February, 10, 8, 0, 0, 0, time.UTC)
	for _, g := range all {
		start, end, err := PeriodRange(g, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		floor, _ := PeriodStart(g, at)
		if !start.Equal(floor) {
			t.Fatalf("%s: range start %v != period start %v", g, start, floor)
		}
		if at.Before(start) || at.After(end) {
			t.Fatalf("%s: %v outside [%v, %v]", g, at, start, end)
		}
		next, _ := NextPeriodStart(g, at)
		if !end.Add(Resolution).Equal(next) {
			t.Fatalf("%s: end %v is not one unit before %v", g, end, next)
		}
	}
}

func TestPeriodRangeDay(t *testing.T) {
	start, end, err := PeriodRange(Day, date(2023, time.June, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2023, time.June, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !start.Equal(date(2023, time.June, 15)) || !end.Equal(want) {
		t.Fatalf("unexpected range [%v, %v]", start, end)
	}
}

func TestInvalidGranularity(t *testing.T) {
	if _, err := PeriodStart("week", time.Now()); !errors.Is(err, ErrInvalidGranularity) {
		t.Fatalf("expected ErrInvalidGranularity, got %v", err)
	}
	if _, _, err := PeriodRange("", time.Now()); !errors.Is(err, ErrInvalidGranularity) {
		t.Fatalf("expected ErrInvalidGranularity, got %v", err)
	}
	if _, err := ParseGranularity("fortnight"); !errors.Is(err, ErrInvalidGranularity) {
		t.Fatalf("expected ErrInvalidGranularity, got %v", err)
	}
	if g, err := ParseGranularity(" Decade "); err != nil || g != Decade {
		t.Fatalf("expected decade, got %q (%v)", g, err)
	}
}

func TestShift(t *testing.T) {
	at := date(2023, time.June, 15)
	got, _ := Shift(Month, at, -1)
	if want := date(2023, time.May, 1); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	got, _ = Shift(Decade, at, 1)
	if want := date(2031, time.January, 1); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	got, _ = Shift(Century, at, -1)
	if want := date(1901, time.January, 1); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGranularityOrdering(t *testing.T) {
	if f, ok := Month.Finer(); !ok || f != Day {
		t.Fatalf("expected day finer than month, got %q", f)
	}
	if _, ok := Day.Finer(); ok {
		t.Fatalf("expected no granularity finer than day")
	}
	if _, ok := Century.Coarser(); ok {
		t.Fatalf("expected no granularity coarser than century")
	}
	if Day.IsView() {
		t.Fatalf("day must not be a view")
	}
}
