// Package app composes the picker with an optional event log into the
// top-level Bubble Tea model.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/rangepick/pkg/tui/components/eventviewer"
	"tableflip.dev/rangepick/pkg/tui/components/rangepicker"
)

const eventHeight = 8

// Model hosts a rangepicker.Model.
type Model struct {
	picker *rangepicker.Model
	events *eventviewer.Model

	termWidth  int
	termHeight int
}

// New wraps picker. When showEvents is set an event log is shown below it.
func New(picker *rangepicker.Model, showEvents bool) *Model {
	m := &Model{picker: picker}
	if showEvents {
		m.events = eventviewer.NewModel(400)
	}
	return m
}

// Picker returns the hosted picker.
func (m *Model) Picker() *rangepicker.Model { return m.picker }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return m.picker.Init() }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.events != nil {
		m.events.Record(msg)
	}
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.termWidth = size.Width
		m.termHeight = size.Height
		if m.events != nil {
			m.events.SetSize(size.Width, eventHeight)
			size.Height -= eventHeight
		}
		msg = size
	}
	_, cmd := m.picker.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	view := m.picker.View()
	if m.termWidth > 0 {
		view = lipgloss.PlaceHorizontal(m.termWidth, lipgloss.Center, view)
	}
	if m.events == nil {
		return view
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, m.events.View())
}

// Run starts the program on the alternate screen and returns the final
// model once the user quits.
func Run(ctx context.Context, m *Model) (*Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(*Model); ok {
		return fm, nil
	}
	return m, nil
}
