// Package rangepicker hosts a picker.Picker inside a Bubble Tea program.
package rangepicker

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/tui/components/grid"
	"tableflip.dev/rangepick/pkg/tui/components/navbar"
	"tableflip.dev/rangepick/pkg/tui/events"
	"tableflip.dev/rangepick/pkg/tui/theme"
	"tableflip.dev/rangepick/pkg/value"
)

// Model is an interactive date picker. The cursor always sits inside the
// displayed period.
type Model struct {
	id     events.ComponentID
	picker *picker.Picker

	cursor time.Time
	keys   KeyMap
	help   help.Model
	theme  theme.Theme
	labels navbar.Labels

	width  int
	height int

	committed    value.Value
	hasCommitted bool
	pending      []tea.Cmd

	status string
	err    error
}

// New wraps p. The model registers itself as a change listener on p.
func New(id events.ComponentID, p *picker.Picker, th theme.Theme) *Model {
	m := &Model{
		id:     id,
		picker: p,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  th,
		labels: navbar.DefaultLabels(),
	}
	p.AddChangeListener(m.onChange)
	m.cursor = m.initialCursor()
	return m
}

// ID returns the component identifier used on emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Picker exposes the wrapped picker.
func (m *Model) Picker() *picker.Picker { return m.picker }

// Cursor returns the start of the focused cell.
func (m *Model) Cursor() time.Time { return m.cursor }

// Committed returns the last value handed to change listeners.
func (m *Model) Committed() (value.Value, bool) { return m.committed, m.hasCommitted }

// Err returns the last error raised while handling input.
func (m *Model) Err() error { return m.err }

// SetSize records the area available to the component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case events.ErrorMsg:
		if msg.Component == m.id {
			m.err = msg.Err
		}
	case events.ChangeMsg:
		if msg.Component == m.id {
			m.status = "selected " + msg.Value.String()
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	view := m.picker.State().View
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-grid.Columns(view))
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(grid.Columns(view))
	case key.Matches(msg, m.keys.Select):
		return m.selectCell()
	case key.Matches(msg, m.keys.DrillUp):
		return m.drillUp()
	case key.Matches(msg, m.keys.Prev):
		return m.pan(func(n picker.NavigationProps) time.Time { return n.Previous })
	case key.Matches(msg, m.keys.Next):
		return m.pan(func(n picker.NavigationProps) time.Time { return n.Next })
	case key.Matches(msg, m.keys.Prev2):
		return m.pan(func(n picker.NavigationProps) time.Time { return n.Previous2 })
	case key.Matches(msg, m.keys.Next2):
		return m.pan(func(n picker.NavigationProps) time.Time { return n.Next2 })
	case key.Matches(msg, m.keys.Today):
		return m.jumpToday()
	}
	return nil
}

func (m *Model) moveCursor(n int) tea.Cmd {
	s := m.picker.State()
	next, err := dates.Shift(grid.CellGranularity(s.View), m.cursor, n)
	if err != nil {
		return m.fail(err)
	}
	m.cursor = next
	if dates.Contains(s.View, s.ActiveStartDate, next) {
		return nil
	}
	anchor, err := dates.PeriodStart(s.View, next)
	if err != nil {
		return m.fail(err)
	}
	m.picker.SetActiveStartDate(anchor)
	return events.NavigateCmd(m.id, s.View, anchor)
}

func (m *Model) selectCell() tea.Cmd {
	before := m.picker.State()
	start, err := dates.PeriodStart(grid.CellGranularity(before.View), m.cursor)
	if err != nil {
		return m.fail(err)
	}
	m.pending = nil
	if err := m.picker.DispatchCellClick(start); err != nil {
		return m.fail(err)
	}
	m.err = nil

	cmds := append(m.pending, events.CellClickCmd(m.id, before.View, start))
	m.pending = nil
	if after := m.picker.State(); after.View != before.View {
		m.cursor = start
		cmds = append(cmds, events.ViewChangeCmd(m.id, before.View, after.View, after.ActiveStartDate))
	}
	return tea.Batch(cmds...)
}

func (m *Model) drillUp() tea.Cmd {
	before := m.picker.State().View
	if !m.picker.DrillUp() {
		return nil
	}
	after := m.picker.State()
	m.clampCursor()
	return events.ViewChangeCmd(m.id, before, after.View, after.ActiveStartDate)
}

func (m *Model) pan(target func(picker.NavigationProps) time.Time) tea.Cmd {
	nav, err := m.picker.NavigationProps()
	if err != nil {
		return m.fail(err)
	}
	anchor := target(nav)
	if anchor.IsZero() {
		return nil
	}
	nav.SetActiveStartDate(anchor)
	m.cursor = anchor
	return events.NavigateCmd(m.id, nav.View, anchor)
}

func (m *Model) jumpToday() tea.Cmd {
	cp, err := m.picker.ContentProps()
	if err != nil {
		return m.fail(err)
	}
	anchor, err := dates.PeriodStart(cp.View, cp.Today)
	if err != nil {
		return m.fail(err)
	}
	m.picker.SetActiveStartDate(anchor)
	m.cursor, _ = dates.PeriodStart(grid.CellGranularity(cp.View), cp.Today)
	return events.NavigateCmd(m.id, cp.View, anchor)
}

func (m *Model) onChange(v value.Value) {
	m.committed = v
	m.hasCommitted = true
	m.pending = append(m.pending, events.ChangeCmd(m.id, v, m.picker.Config().ReturnValue))
}

func (m *Model) fail(err error) tea.Cmd {
	m.err = err
	return events.ErrorCmd(m.id, err)
}

func (m *Model) initialCursor() time.Time {
	s := m.picker.State()
	if cp, err := m.picker.ContentProps(); err == nil && cp.HasValue() && dates.Contains(s.View, s.ActiveStartDate, cp.From) {
		if start, err := dates.PeriodStart(grid.CellGranularity(s.View), cp.From); err == nil {
			return start
		}
	}
	return s.ActiveStartDate
}

func (m *Model) clampCursor() {
	s := m.picker.State()
	if !dates.Contains(s.View, s.ActiveStartDate, m.cursor) {
		m.cursor = s.ActiveStartDate
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	cp, err := m.picker.ContentProps()
	if err != nil {
		return m.theme.Footer.Error.Render(err.Error())
	}
	layout, err := grid.Build(cp)
	if err != nil {
		return m.theme.Footer.Error.Render(err.Error())
	}
	nav, err := m.picker.NavigationProps()
	if err != nil {
		return m.theme.Footer.Error.Render(err.Error())
	}

	body := grid.Render(layout, m.cursor, m.theme.Grid)
	bar := navbar.Render(nav, m.labels, lipgloss.Width(body), m.theme.Nav)
	panel := m.theme.Panel.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, bar, "", body))

	return lipgloss.JoinVertical(lipgloss.Left, panel, m.footer())
}

func (m *Model) footer() string {
	var lines []string
	switch {
	case m.err != nil:
		lines = append(lines, m.theme.Footer.Error.Render(m.err.Error()))
	case m.status != "":
		lines = append(lines, m.theme.Footer.Status.Render(m.status))
	}
	lines = append(lines, m.theme.Footer.Help.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
