package eventviewer

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/tui/events"
	"tableflip.dev/rangepick/pkg/value"
)

func TestRecordDescribers(t *testing.T) {
	m := NewModel(10)
	m.now = func() time.Time { return time.Date(2023, time.June, 15, 9, 30, 0, 0, time.UTC) }
	m.SetSize(80, 8)

	if m.Record(tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("expected non-picker messages to be ignored")
	}
	if !m.Record(events.ChangeMsg{Component: "p", Value: value.Point(time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)), Mode: value.ReturnStart}) {
		t.Fatalf("expected the change to be recorded")
	}
	if !m.Record(events.ErrorMsg{Component: "p", Err: errors.New("boom")}) {
		t.Fatalf("expected the error to be recorded")
	}

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Summary != "error" || entries[0].Level != LevelError {
		t.Fatalf("expected the newest entry to be the error, got %+v", entries[0])
	}
	if !strings.Contains(entries[1].Detail, "2023-06-15") {
		t.Fatalf("expected the change description, got %q", entries[1].Detail)
	}
	if out := m.View(); !strings.Contains(out, "Events") || !strings.Contains(out, "09:30:00.000") {
		t.Fatalf("unexpected view:\n%s", out)
	}
}

func TestAppendCapsEntries(t *testing.T) {
	m := NewModel(2)
	for i := 0; i < 5; i++ {
		m.Append(Entry{Summary: "navigate", Detail: events.NavigateMsg{View: dates.Month}.Describe()})
	}
	if len(m.Entries()) != 2 {
		t.Fatalf("expected the log capped at 2, got %d", len(m.Entries()))
	}
}

func TestViewEmptyBeforeSizing(t *testing.T) {
	if out := NewModel(0).View(); out != "" {
		t.Fatalf("expected an empty view before sizing, got %q", out)
	}
}
