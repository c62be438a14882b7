package resolve

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/printers"
	"tableflip.dev/rangepick/pkg/value"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func now() time.Time { return day(2023, time.June, 20) }

func TestResultDrillsAndCommits(t *testing.T) {
	r := &Resolve{
		Config: picker.Config{View: dates.Decade, Locale: "en", Value: value.Point(day(2023, time.June, 15))},
		Clicks: []time.Time{day(2024, time.March, 9), day(2024, time.May, 2), day(2024, time.May, 17)},
		Now:    now,
	}
	res, _, err := r.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.View != dates.Month || !res.ActiveStartDate.Equal(day(2024, time.May, 1)) {
		t.Fatalf("expected the May 2024 month view, got %s %s", res.View, res.ActiveStartDate)
	}
	if res.Label != "May 2024" {
		t.Fatalf("unexpected label %q", res.Label)
	}
	if !reflect.DeepEqual(res.Emitted, []string{"2024-05-17"}) || res.Value != "2024-05-17" {
		t.Fatalf("unexpected emitted %v value %q", res.Emitted, res.Value)
	}
}

func TestResultDrillUpStopsAtMinDetail(t *testing.T) {
	r := &Resolve{
		Config: picker.Config{MinDetail: dates.Year, Locale: "en", Value: value.Point(day(2023, time.June, 15))},
		Up:     5,
		Now:    now,
	}
	res, _, err := r.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.View != dates.Year || !res.ActiveStartDate.Equal(day(2023, time.January, 1)) {
		t.Fatalf("expected the 2023 year view, got %s %s", res.View, res.ActiveStartDate)
	}
	if len(res.Emitted) != 0 {
		t.Fatalf("expected nothing emitted, got %v", res.Emitted)
	}
}

func TestResultRangeMode(t *testing.T) {
	r := &Resolve{
		Config: picker.Config{MaxDetail: dates.Year, ReturnValue: value.ReturnRange, Locale: "en"},
		Clicks: []time.Time{day(2023, time.February, 14)},
		Now:    now,
	}
	res, _, err := r.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "2023-02-01.." + day(2023, time.February, 28).Add(24*time.Hour-time.Millisecond).Format("2006-01-02T15:04:05.000Z07:00")
	if len(res.Emitted) != 1 || res.Emitted[0] != want {
		t.Fatalf("expected %q, got %v", want, res.Emitted)
	}
}

func TestResultInvalidReturnMode(t *testing.T) {
	r := &Resolve{
		Config: picker.Config{ReturnValue: "middle", Locale: "en"},
		Clicks: []time.Time{day(2023, time.June, 1)},
		Now:    now,
	}
	if _, _, err := r.Result(); !errors.Is(err, value.ErrInvalidReturnMode) {
		t.Fatalf("expected ErrInvalidReturnMode, got %v", err)
	}
}

func TestDoJSON(t *testing.T) {
	var buf bytes.Buffer
	r := &Resolve{
		Config: picker.Config{View: dates.Year, Locale: "en", Value: value.Point(day(2023, time.June, 15))},
		JSON:   true,
		Out:    &buf,
		Now:    now,
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got printers.Resolved
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got.View != dates.Year || got.Label != "2023" || got.Value != "2023-06-15" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestDoGrid(t *testing.T) {
	var buf bytes.Buffer
	r := &Resolve{
		Config: picker.Config{View: dates.Year, Locale: "en"},
		Grid:   true,
		Out:    &buf,
		Now:    now,
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "Jan") || !strings.Contains(out, "Label") {
		t.Fatalf("expected a table and a grid, got:\n%s", out)
	}
}
