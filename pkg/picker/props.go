package picker

import (
	"fmt"
	"time"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/value"
)

// NavigationProps is what the navigation bar needs to render and act.
type NavigationProps struct {
	ActiveStartDate time.Time
	View            dates.Granularity
	Views           []dates.Granularity
	Label           string

	DrillUpAvailable bool

	// Previous and Next are the anchors of the neighbouring periods.
	Previous time.Time
	Next     time.Time
	// Previous2 and Next2 jump one coarser period. They are zero in the
	// century view.
	Previous2 time.Time
	Next2     time.Time

	DrillUp            func() bool
	SetActiveStartDate func(time.Time)
}

// ContentProps is what the grid of the displayed view needs.
type ContentProps struct {
	View            dates.Granularity
	ActiveStartDate time.Time
	ValueType       dates.Granularity

	// From and To bound the current value at ValueType resolution. They are
	// only meaningful when Present is set.
	Value   value.Value
	From    time.Time
	To      time.Time
	Present bool

	Today time.Time

	CalendarType    dates.CalendarType
	ShowWeekNumbers bool
	Locale          dates.Locale

	OnChange func(time.Time) error
	SetView  func(dates.Granularity) error
}

// HasValue reports whether there is a value to highlight.
func (c ContentProps) HasValue() bool { return c.Present }

// NavigationProps derives the navigation bar props from the current state.
func (p *Picker) NavigationProps() (NavigationProps, error) {
	s := p.machine.State()
	label, err := p.locale.PeriodLabel(s.View, s.ActiveStartDate)
	if err != nil {
		return NavigationProps{}, err
	}
	prev, err := dates.Shift(s.View, s.ActiveStartDate, -1)
	if err != nil {
		return NavigationProps{}, err
	}
	next, err := dates.Shift(s.View, s.ActiveStartDate, 1)
	if err != nil {
		return NavigationProps{}, err
	}
	props := NavigationProps{
		ActiveStartDate:    s.ActiveStartDate,
		View:               s.View,
		Views:              p.AllowedViews(),
		Label:              label,
		DrillUpAvailable:   p.machine.CanDrillUp(),
		Previous:           prev,
		Next:               next,
		DrillUp:            p.DrillUp,
		SetActiveStartDate: p.SetActiveStartDate,
	}
	if n := periodsPerCoarser(s.View); n > 0 {
		props.Previous2, _ = dates.Shift(s.View, s.ActiveStartDate, -n)
		props.Next2, _ = dates.Shift(s.View, s.ActiveStartDate, n)
	}
	return props, nil
}

// ContentProps derives the grid props for the displayed view.
func (p *Picker) ContentProps() (ContentProps, error) {
	s := p.machine.State()
	if !s.View.IsView() {
		return ContentProps{}, fmt.Errorf("%w: %q", ErrInvalidView, string(s.View))
	}
	valueType := p.cfg.ValueType()
	from, to, present, err := value.Normalize(valueType, p.current)
	if err != nil {
		return ContentProps{}, err
	}
	return ContentProps{
		View:            s.View,
		ActiveStartDate: s.ActiveStartDate,
		ValueType:       valueType,
		Value:           p.current,
		From:            from,
		To:              to,
		Present:         present,
		Today:           p.clock(),
		CalendarType:    p.calendarType,
		ShowWeekNumbers: p.cfg.ShowWeekNumbers,
		Locale:          p.locale,
		OnChange:        p.DispatchCellClick,
		SetView:         p.SetView,
	}, nil
}

// periodsPerCoarser is how many periods of view one double jump covers.
func periodsPerCoarser(view dates.Granularity) int {
	switch view {
	case dates.Month:
		return 12
	case dates.Year, dates.Decade:
		return 10
	}
	return 0
}
