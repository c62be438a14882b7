// Package navigation holds the picker's view state machine.
package navigation

import (
	"time"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/views"
)

// State is the displayed view and the anchor of the visible period.
type State struct {
	View            dates.Granularity
	ActiveStartDate time.Time
}

// Machine owns a State and the bounds it is navigated within. It is not safe
// for concurrent use.
type Machine struct {
	bounds views.Bounds
	state  State
}

// New resolves requested against bounds and anchors the view at reference.
func New(bounds views.Bounds, requested dates.Granularity, reference time.Time) (*Machine, error) {
	m := &Machine{bounds: bounds}
	if err := m.Reset(views.Resolve(bounds, requested), reference); err != nil {
		return nil, err
	}
	return m, nil
}

// State returns a copy of the current state.
func (m *Machine) State() State { return m.state }

// View returns the displayed view.
func (m *Machine) View() dates.Granularity { return m.state.View }

// ActiveStartDate returns the anchor of the visible period.
func (m *Machine) ActiveStartDate() time.Time { return m.state.ActiveStartDate }

// Bounds returns the window the machine navigates within.
func (m *Machine) Bounds() views.Bounds { return m.bounds }

// SetBounds replaces the window without touching the state.
func (m *Machine) SetBounds(b views.Bounds) { m.bounds = b }

// Reset moves to view and anchors it at the period containing reference.
func (m *Machine) Reset(view dates.Granularity, reference time.Time) error {
	start, err := dates.PeriodStart(view, reference)
	if err != nil {
		return err
	}
	m.state = State{View: view, ActiveStartDate: start}
	return nil
}

// CanDrillDown reports whether a finer view is allowed.
func (m *Machine) CanDrillDown() bool {
	return views.CanDrillDown(m.bounds, m.state.View)
}

// CanDrillUp reports whether a coarser view is allowed.
func (m *Machine) CanDrillUp() bool {
	return views.CanDrillUp(m.bounds, m.state.View)
}

// DrillDown moves to the next finer view anchored at target. It does nothing
// and returns false at the finest allowed view.
func (m *Machine) DrillDown(target time.Time) bool {
	next, ok := views.Finer(m.bounds, m.state.View)
	if !ok {
		return false
	}
	// next is always an allowed view so PeriodStart cannot fail.
	start, _ := dates.PeriodStart(next, target)
	m.state = State{View: next, ActiveStartDate: start}
	return true
}

// DrillUp moves to the next coarser view, anchored at the period containing
// the previous anchor. It does nothing and returns false at the coarsest
// allowed view.
func (m *Machine) DrillUp() bool {
	prev, ok := views.Coarser(m.bounds, m.state.View)
	if !ok {
		return false
	}
	start, _ := dates.PeriodStart(prev, m.state.ActiveStartDate)
	m.state = State{View: prev, ActiveStartDate: start}
	return true
}

// JumpToView switches to view without checking the bounds and re-anchors at
// the period containing the previous anchor.
func (m *Machine) JumpToView(view dates.Granularity) error {
	return m.Reset(view, m.state.ActiveStartDate)
}

// SetActiveStartDate pans to t without changing the view.
func (m *Machine) SetActiveStartDate(t time.Time) {
	m.state.ActiveStartDate = t
}
