package views

import (
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/rangepick/pkg/dates"
)

func TestAllowed(t *testing.T) {
	got := Allowed(Bounds{Min: dates.Decade, Max: dates.Year})
	want := []dates.Granularity{dates.Decade, dates.Year}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	got = Allowed(Bounds{Min: dates.Century, Max: dates.Month})
	if len(got) != 4 || got[0] != dates.Century || got[3] != dates.Month {
		t.Fatalf("unexpected full window %v", got)
	}
}

func TestResolveClampsToFinest(t *testing.T) {
	b := Bounds{Min: dates.Decade, Max: dates.Year}
	if got := Resolve(b, dates.Month); got != dates.Year {
		t.Fatalf("expected year, got %q", got)
	}
	if got := Resolve(b, dates.Century); got != dates.Year {
		t.Fatalf("expected a coarser request to clamp to year too, got %q", got)
	}
	if got := Resolve(b, dates.Decade); got != dates.Decade {
		t.Fatalf("expected decade unchanged, got %q", got)
	}
}

func TestDrillPredicates(t *testing.T) {
	b := Bounds{Min: dates.Year, Max: dates.Month}
	if !CanDrillDown(b, dates.Year) || CanDrillDown(b, dates.Month) {
		t.Fatalf("unexpected drill-down availability")
	}
	if CanDrillUp(b, dates.Year) || !CanDrillUp(b, dates.Month) {
		t.Fatalf("unexpected drill-up availability")
	}
	if CanDrillUp(b, dates.Century) {
		t.Fatalf("a view outside the window cannot drill up")
	}
	if next, ok := Finer(b, dates.Year); !ok || next != dates.Month {
		t.Fatalf("expected month, got %q", next)
	}
	if prev, ok := Coarser(b, dates.Month); !ok || prev != dates.Year {
		t.Fatalf("expected year, got %q", prev)
	}
	if !IsAllowed(b, dates.Month) || IsAllowed(b, dates.Decade) {
		t.Fatalf("unexpected membership")
	}
}

func TestValueType(t *testing.T) {
	cases := map[dates.Granularity]dates.Granularity{
		dates.Century: dates.Decade,
		dates.Decade:  dates.Year,
		dates.Year:    dates.Month,
		dates.Month:   dates.Day,
	}
	for max, want := range cases {
		if got := ValueType(Bounds{Min: dates.Century, Max: max}); got != want {
			t.Fatalf("max %s: expected %s, got %s", max, want, got)
		}
	}
}

func TestNewBounds(t *testing.T) {
	if _, err := NewBounds(dates.Month, dates.Year); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds, got %v", err)
	}
	if _, err := NewBounds(dates.Century, dates.Day); !errors.Is(err, dates.ErrInvalidGranularity) {
		t.Fatalf("expected ErrInvalidGranularity, got %v", err)
	}
	if _, err := NewBounds(dates.Year, dates.Year); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
