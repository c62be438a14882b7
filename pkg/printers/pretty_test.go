package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/store"
	"tableflip.dev/rangepick/pkg/tui/components/grid"
	"tableflip.dev/rangepick/pkg/value"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSelections(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	pp.Selections(
		store.NewSelection("q3", value.ReturnRange, dates.Month, value.Pair(day(2023, time.July, 1), day(2023, time.September, 30)), day(2024, time.January, 2)),
		store.NewSelection("launch", value.ReturnStart, dates.Month, value.Point(day(2023, time.June, 15)), day(2024, time.January, 2)),
	)
	out := buf.String()
	for _, want := range []string{"Name", "q3", "2023-07-01..2023-09-30", "launch", "2023-06-15"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes for a buffer, got %q", out)
	}
}

func TestSelectionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Selections()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none, got %q", buf.String())
	}
}

func TestResolved(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Resolved(Resolved{
		View:            dates.Year,
		Views:           []dates.Granularity{dates.Decade, dates.Year, dates.Month},
		ActiveStartDate: day(2023, time.January, 1),
		Label:           "2023",
		Emitted:         []string{"2023-06-15"},
	})
	out := buf.String()
	for _, want := range []string{"decade, year, month", "2023-01-01", "Emitted", "2023-06-15"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestGrid(t *testing.T) {
	p, err := picker.New(picker.Config{
		Value:        value.Point(day(2023, time.June, 15)),
		CalendarType: dates.CalendarISO8601,
		Locale:       "en",
	}, picker.WithClock(func() time.Time { return day(2023, time.June, 20) }))
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	cp, err := p.ContentProps()
	if err != nil {
		t.Fatalf("content props: %v", err)
	}
	l, err := grid.Build(cp)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var buf bytes.Buffer
	New(&buf).Grid(l)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected a header and five weeks, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Mo") {
		t.Fatalf("expected a Monday-first header, got %q", lines[0])
	}
	if !strings.Contains(lines[1], " 1  2  3  4") {
		t.Fatalf("expected the first week to start on Thursday, got %q", lines[1])
	}
}
