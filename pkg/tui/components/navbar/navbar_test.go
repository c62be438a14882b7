package navbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/tui/theme"
	"tableflip.dev/rangepick/pkg/value"
)

func navProps(t *testing.T, view dates.Granularity) picker.NavigationProps {
	t.Helper()
	p, err := picker.New(picker.Config{
		View:   view,
		Value:  value.Point(time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)),
		Locale: "en",
	})
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	nav, err := p.NavigationProps()
	if err != nil {
		t.Fatalf("navigation props: %v", err)
	}
	return nav
}

func TestRenderMonth(t *testing.T) {
	out := Render(navProps(t, dates.Month), DefaultLabels(), 40, theme.Default(true).Nav)
	if !strings.Contains(out, "June 2023 ↑") {
		t.Fatalf("expected label with drill marker, got %q", out)
	}
	if !strings.Contains(out, "«") || !strings.Contains(out, "»") {
		t.Fatalf("expected double jump buttons, got %q", out)
	}
	if w := lipgloss.Width(out); w != 40 {
		t.Fatalf("expected bar padded to 40 columns, got %d", w)
	}
}

func TestRenderCentury(t *testing.T) {
	out := Render(navProps(t, dates.Century), DefaultLabels(), 0, theme.Default(false).Nav)
	if strings.Contains(out, "«") || strings.Contains(out, "↑") {
		t.Fatalf("century view has no double jump or drill up, got %q", out)
	}
	if !strings.Contains(out, "2001 – 2100") {
		t.Fatalf("expected century label, got %q", out)
	}
}

func TestRenderTruncatesLabel(t *testing.T) {
	out := Render(navProps(t, dates.Month), DefaultLabels(), 14, theme.Default(true).Nav)
	if !strings.Contains(out, "…") {
		t.Fatalf("expected truncated label, got %q", out)
	}
}
