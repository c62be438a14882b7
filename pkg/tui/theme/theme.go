package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Nav    NavTheme
	Grid   GridTheme
	Panel  PanelTheme
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// NavTheme styles the navigation bar above the grid.
type NavTheme struct {
	Label    lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
}

// GridTheme styles the cells of every view.
type GridTheme struct {
	Header     lipgloss.Style
	Cell       lipgloss.Style
	Outside    lipgloss.Style
	Weekend    lipgloss.Style
	WeekNumber lipgloss.Style
	Today      lipgloss.Style
	InRange    lipgloss.Style
	Selected   lipgloss.Style
	Cursor     lipgloss.Style
}

// PanelTheme styles the frame around the picker.
type PanelTheme struct {
	Frame lipgloss.Style
}

const (
	accentHex   = "#5f5fd7"
	darkBaseHex = "#1c1c1c"
	lightBase   = "#f5f5f5"
)

// Default returns the built-in theme. dark selects colors for a dark
// terminal background.
func Default(dark bool) Theme {
	base := lightBase
	if dark {
		base = darkBaseHex
	}

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		},
		Nav: NavTheme{
			Label:    lipgloss.NewStyle().Bold(true),
			Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
		Grid: GridTheme{
			Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Cell:       lipgloss.NewStyle(),
			Outside:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Weekend:    lipgloss.NewStyle().Foreground(lipgloss.Color("174")),
			WeekNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Today:      lipgloss.NewStyle().Underline(true),
			InRange:    lipgloss.NewStyle().Background(lipgloss.Color(blend(accentHex, base, 0.55))),
			Selected:   lipgloss.NewStyle().Background(lipgloss.Color(accentHex)).Foreground(lipgloss.Color("15")),
			Cursor:     lipgloss.NewStyle().Reverse(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
		},
	}
}

// blend mixes two hex colors in Lab space; t=0 is a, t=1 is b.
func blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
