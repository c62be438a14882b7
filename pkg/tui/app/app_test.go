package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/tui/components/rangepicker"
	"tableflip.dev/rangepick/pkg/tui/theme"
	"tableflip.dev/rangepick/pkg/value"
)

func newApp(t *testing.T, showEvents bool) *Model {
	t.Helper()
	p, err := picker.New(picker.Config{
		Locale: "en",
		Value:  value.Point(time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)),
	}, picker.WithClock(func() time.Time { return time.Date(2023, time.June, 20, 0, 0, 0, 0, time.UTC) }))
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	return New(rangepicker.New("picker", p, theme.Default(true)), showEvents)
}

func TestEventsRecorded(t *testing.T) {
	m := newApp(t, true)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected commands from the click")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m.Update(c())
		}
	} else {
		m.Update(msg)
	}

	if out := m.View(); !strings.Contains(out, "change") || !strings.Contains(out, "click") {
		t.Fatalf("expected change and click in the event log:\n%s", out)
	}
	if v, ok := m.Picker().Committed(); !ok || v.String() != "2023-06-15" {
		t.Fatalf("expected the 15th committed, got %v %t", v, ok)
	}
}

func TestViewWithoutEvents(t *testing.T) {
	m := newApp(t, false)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	out := m.View()
	if strings.Contains(out, "Events") {
		t.Fatalf("expected no event log:\n%s", out)
	}
	if !strings.Contains(out, "June 2023") {
		t.Fatalf("expected the picker:\n%s", out)
	}
}
