// Package navbar renders the navigation bar above the picker grid.
package navbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/tui/theme"
)

// Labels are the button captions.
type Labels struct {
	Prev2 string
	Prev  string
	Next  string
	Next2 string
}

// DefaultLabels returns the stock arrow captions.
func DefaultLabels() Labels {
	return Labels{Prev2: "«", Prev: "‹", Next: "›", Next2: "»"}
}

// Render draws the bar centered in width. The period label is truncated
// when the bar does not fit; a drillable label is marked with "↑".
func Render(props picker.NavigationProps, labels Labels, width int, th theme.NavTheme) string {
	hasDouble := !props.Previous2.IsZero()

	left := []string{button(labels.Prev, th)}
	right := []string{button(labels.Next, th)}
	if hasDouble {
		left = append([]string{button(labels.Prev2, th)}, left...)
		right = append(right, button(labels.Next2, th))
	}

	label := props.Label
	if props.DrillUpAvailable {
		label += " ↑"
	}
	sides := lipgloss.Width(strings.Join(left, " ")) + lipgloss.Width(strings.Join(right, " ")) + 2
	if width > 0 && sides+lipgloss.Width(label) > width {
		if avail := width - sides; avail > 1 {
			label = truncate.StringWithTail(label, uint(avail), "…")
		}
	}
	labelStyle := th.Label
	if !props.DrillUpAvailable {
		labelStyle = labelStyle.Inherit(th.Disabled)
	}

	bar := strings.Join(left, " ") + " " + labelStyle.Render(label) + " " + strings.Join(right, " ")
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
	}
	return bar
}

func button(caption string, th theme.NavTheme) string {
	return th.Button.Render(caption)
}
