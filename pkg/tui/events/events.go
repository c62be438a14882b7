package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/value"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// Describer is implemented by every message so hosts can log them.
type Describer interface {
	Describe() string
}

// ChangeMsg is emitted when the user commits a selection. Value is already
// shaped by the picker's return mode.
type ChangeMsg struct {
	Component ComponentID
	Value     value.Value
	Mode      value.ReturnMode
}

// Describe renders the selection in a human-friendly format for logs.
func (m ChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q value:%q mode:%q`, m.Component, m.Value.String(), m.Mode)
}

// ChangeCmd wraps ChangeMsg into a tea.Cmd.
func ChangeCmd(component ComponentID, v value.Value, mode value.ReturnMode) tea.Cmd {
	return func() tea.Msg {
		return ChangeMsg{Component: component, Value: v, Mode: mode}
	}
}

// CellClickMsg is emitted for every activated cell, whether it drilled or
// committed.
type CellClickMsg struct {
	Component ComponentID
	View      dates.Granularity
	Start     time.Time
}

// Describe renders the click for logs.
func (m CellClickMsg) Describe() string {
	return fmt.Sprintf(`component:%q view:%q start:%q`, m.Component, m.View, m.Start.Format(value.DateLayout))
}

// CellClickCmd wraps CellClickMsg into a tea.Cmd.
func CellClickCmd(component ComponentID, view dates.Granularity, start time.Time) tea.Cmd {
	return func() tea.Msg {
		return CellClickMsg{Component: component, View: view, Start: start}
	}
}

// ViewChangeMsg announces a drill up or down.
type ViewChangeMsg struct {
	Component       ComponentID
	Previous        dates.Granularity
	Current         dates.Granularity
	ActiveStartDate time.Time
}

// Describe renders the view change for logs.
func (m ViewChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q from:%q to:%q anchor:%q`,
		m.Component, m.Previous, m.Current, m.ActiveStartDate.Format(value.DateLayout))
}

// ViewChangeCmd wraps ViewChangeMsg into a tea.Cmd.
func ViewChangeCmd(component ComponentID, prev, current dates.Granularity, anchor time.Time) tea.Cmd {
	return func() tea.Msg {
		return ViewChangeMsg{Component: component, Previous: prev, Current: current, ActiveStartDate: anchor}
	}
}

// NavigateMsg announces a pan to another period without a view change.
type NavigateMsg struct {
	Component       ComponentID
	View            dates.Granularity
	ActiveStartDate time.Time
}

// Describe renders the pan for logs.
func (m NavigateMsg) Describe() string {
	return fmt.Sprintf(`component:%q view:%q anchor:%q`, m.Component, m.View, m.ActiveStartDate.Format(value.DateLayout))
}

// NavigateCmd wraps NavigateMsg into a tea.Cmd.
func NavigateCmd(component ComponentID, view dates.Granularity, anchor time.Time) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Component: component, View: view, ActiveStartDate: anchor}
	}
}

// ErrorMsg reports a failure raised while handling input.
type ErrorMsg struct {
	Component ComponentID
	Err       error
}

// Describe renders the error for logs.
func (m ErrorMsg) Describe() string {
	return fmt.Sprintf(`component:%q error:%q`, m.Component, m.Err)
}

// ErrorCmd wraps ErrorMsg into a tea.Cmd.
func ErrorCmd(component ComponentID, err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Component: component, Err: err}
	}
}
