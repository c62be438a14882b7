// Package picker reconciles picker configuration with the navigation state
// machine and turns cell clicks into drills or committed selections.
package picker

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/navigation"
	"tableflip.dev/rangepick/pkg/value"
	"tableflip.dev/rangepick/pkg/views"
)

// ErrInvalidView is returned when the displayed view is not one of the four
// view granularities.
var ErrInvalidView = errors.New("invalid view")

// Option customizes a Picker.
type Option func(*Picker)

// WithClock replaces time.Now as the source of "now".
func WithClock(now func() time.Time) Option {
	return func(p *Picker) {
		if now != nil {
			p.clock = now
		}
	}
}

// Picker is one date-range picker instance. It is not safe for concurrent
// use; hosts deliver configuration changes and clicks serially.
type Picker struct {
	cfg   Config
	clock func() time.Time

	locale       dates.Locale
	calendarType dates.CalendarType

	machine *navigation.Machine
	current value.Value

	changeListeners []ChangeFunc
}

// New builds a picker and runs OnInit with cfg.
func New(cfg Config, opts ...Option) (*Picker, error) {
	p := &Picker{clock: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.OnInit(cfg); err != nil {
		return nil, err
	}
	return p, nil
}

// OnInit sets up the locale context and the initial navigation state. The
// view is resolved against the bounds and anchored at the value's start, or
// at now when no value is set.
func (p *Picker) OnInit(cfg Config) error {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	from, _, hasValue, err := value.Normalize(cfg.ValueType(), cfg.Value)
	if err != nil {
		return err
	}
	m, err := navigation.New(cfg.Bounds(), cfg.View, p.reference(from, hasValue))
	if err != nil {
		return err
	}
	p.cfg = cfg
	p.machine = m
	p.current = cfg.Value
	p.locale = dates.NewLocale(cfg.Locale)
	p.calendarType = resolveCalendarType(cfg.CalendarType, p.locale)
	return nil
}

// OnConfigure reconciles a configuration change. prev and next are read once
// so every check sees the same snapshot. The active start date is only
// recomputed when the bounds or the normalized value changed, so a panned
// view survives unrelated changes.
func (p *Picker) OnConfigure(prev, next Config) error {
	prev, next = prev.WithDefaults(), next.WithDefaults()
	if err := next.Validate(); err != nil {
		return err
	}

	prevFrom, prevTo, prevHas, err := value.Normalize(prev.ValueType(), prev.Value)
	if err != nil {
		return err
	}
	nextFrom, nextTo, nextHas, err := value.Normalize(next.ValueType(), next.Value)
	if err != nil {
		return err
	}

	boundsChanged := prev.MinDetail != next.MinDetail || prev.MaxDetail != next.MaxDetail
	valueFromChanged := prevHas != nextHas || !prevFrom.Equal(nextFrom)
	valueToChanged := prevHas != nextHas || !prevTo.Equal(nextTo)
	valueChanged := valueFromChanged || valueToChanged

	if prev.Locale != next.Locale {
		p.locale = dates.NewLocale(next.Locale)
	}
	p.calendarType = resolveCalendarType(next.CalendarType, p.locale)

	bounds := next.Bounds()
	view := p.machine.View()
	if boundsChanged && !views.IsAllowed(bounds, view) {
		view = views.Resolve(bounds, next.View)
	}
	p.machine.SetBounds(bounds)
	if boundsChanged || valueChanged {
		if err := p.machine.Reset(view, p.reference(nextFrom, nextHas)); err != nil {
			return err
		}
	}
	if valueChanged {
		p.current = next.Value
	}
	p.cfg = next
	return nil
}

func (p *Picker) reference(from time.Time, hasValue bool) time.Time {
	if !hasValue {
		return p.clock()
	}
	return from
}

func resolveCalendarType(ct dates.CalendarType, l dates.Locale) dates.CalendarType {
	parsed, err := dates.ParseCalendarType(string(ct))
	if err != nil || parsed == "" {
		return dates.CalendarTypeFor(l)
	}
	return parsed
}

// Config returns the configuration last applied, with defaults filled in.
func (p *Picker) Config() Config { return p.cfg }

// State returns the navigation state.
func (p *Picker) State() navigation.State { return p.machine.State() }

// Value returns the current value: the configured one, or the last
// committed selection.
func (p *Picker) Value() value.Value { return p.current }

// Locale returns the picker's formatting context.
func (p *Picker) Locale() dates.Locale { return p.locale }

// CalendarType returns the week convention passed to the month grid.
func (p *Picker) CalendarType() dates.CalendarType { return p.calendarType }

// AllowedViews returns the views between the configured bounds.
func (p *Picker) AllowedViews() []dates.Granularity {
	return views.Allowed(p.machine.Bounds())
}

// CanDrillDown reports whether a click drills instead of selecting.
func (p *Picker) CanDrillDown() bool { return p.machine.CanDrillDown() }

// CanDrillUp reports whether a coarser view is available.
func (p *Picker) CanDrillUp() bool { return p.machine.CanDrillUp() }

// DrillUp moves to the next coarser view. It returns false when none is
// allowed.
func (p *Picker) DrillUp() bool { return p.machine.DrillUp() }

// SetView jumps straight to view. Tokens outside the five granularities fail
// with ErrInvalidView and leave the state unchanged.
func (p *Picker) SetView(view dates.Granularity) error {
	if !view.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidView, string(view))
	}
	return p.machine.JumpToView(view)
}

// SetActiveStartDate pans without changing the view.
func (p *Picker) SetActiveStartDate(t time.Time) {
	p.machine.SetActiveStartDate(t)
}

// AddChangeListener registers fn to run after Config.OnChange whenever a
// selection is committed. Listeners run in registration order.
func (p *Picker) AddChangeListener(fn ChangeFunc) {
	if fn != nil {
		p.changeListeners = append(p.changeListeners, fn)
	}
}

// Emit shapes raw according to the configured return mode.
func (p *Picker) Emit(raw value.Value) (value.Value, error) {
	return value.Process(p.cfg.ReturnValue, p.cfg.ValueType(), raw)
}

type cellHandler func(time.Time) error

// DispatchCellClick handles a click on the cell starting at t. Above the
// finest allowed view the click drills down; at the finest view it commits
// the selection. Either way the caller's click listener for the displayed
// view runs afterwards.
func (p *Picker) DispatchCellClick(t time.Time) error {
	for _, h := range p.cellHandlers() {
		if err := h(t); err != nil {
			return err
		}
	}
	return nil
}

func (p *Picker) cellHandlers() []cellHandler {
	handlers := make([]cellHandler, 0, 2)
	if p.machine.CanDrillDown() {
		handlers = append(handlers, p.drillDown)
	} else {
		handlers = append(handlers, p.commit)
	}
	if fn := p.cfg.clickListener(p.machine.View()); fn != nil {
		handlers = append(handlers, func(t time.Time) error {
			fn(t)
			return nil
		})
	}
	return handlers
}

func (p *Picker) drillDown(t time.Time) error {
	p.machine.DrillDown(t)
	return nil
}

func (p *Picker) commit(t time.Time) error {
	raw := value.Point(t)
	processed, err := p.Emit(raw)
	if err != nil {
		return fmt.Errorf("commit %s: %w", raw, err)
	}
	p.current = raw
	for _, fn := range p.onChangeListeners() {
		fn(processed)
	}
	return nil
}

func (p *Picker) onChangeListeners() []ChangeFunc {
	listeners := make([]ChangeFunc, 0, len(p.changeListeners)+1)
	if p.cfg.OnChange != nil {
		listeners = append(listeners, p.cfg.OnChange)
	}
	return append(listeners, p.changeListeners...)
}
