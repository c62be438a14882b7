package picker

import (
	"time"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/value"
	"tableflip.dev/rangepick/pkg/views"
)

// ChangeFunc receives a committed selection shaped by the return mode.
type ChangeFunc func(value.Value)

// ClickFunc receives the start of a clicked cell.
type ClickFunc func(time.Time)

// Config is the externally supplied configuration of a picker. Zero fields
// take the defaults listed on WithDefaults.
type Config struct {
	MinDetail dates.Granularity
	MaxDetail dates.Granularity
	View      dates.Granularity
	Value     value.Value

	ReturnValue value.ReturnMode

	// CalendarType and ShowWeekNumbers only reach the month grid.
	CalendarType    dates.CalendarType
	ShowWeekNumbers bool

	// Locale is a BCP 47 or POSIX tag. Empty means the platform default.
	Locale string

	OnChange      ChangeFunc
	OnClickDecade ClickFunc
	OnClickYear   ClickFunc
	OnClickMonth  ClickFunc
	OnClickDay    ClickFunc
}

// WithDefaults fills MinDetail (century), MaxDetail (month), View (month)
// and ReturnValue (start).
func (c Config) WithDefaults() Config {
	if c.MinDetail == "" {
		c.MinDetail = dates.Century
	}
	if c.MaxDetail == "" {
		c.MaxDetail = dates.Month
	}
	if c.View == "" {
		c.View = dates.Month
	}
	if c.ReturnValue == "" {
		c.ReturnValue = value.ReturnStart
	}
	return c
}

// Bounds returns the configured detail window.
func (c Config) Bounds() views.Bounds {
	return views.Bounds{Min: c.MinDetail, Max: c.MaxDetail}
}

// ValueType returns the resolution committed values are expressed at.
func (c Config) ValueType() dates.Granularity {
	return views.ValueType(c.Bounds())
}

// Validate reports configuration errors. The requested View is not checked;
// out of range views are clamped instead.
func (c Config) Validate() error {
	if err := c.Bounds().Validate(); err != nil {
		return err
	}
	if _, err := dates.ParseCalendarType(string(c.CalendarType)); err != nil {
		return err
	}
	return nil
}

func (c Config) clickListener(view dates.Granularity) ClickFunc {
	switch view {
	case dates.Century:
		return c.OnClickDecade
	case dates.Decade:
		return c.OnClickYear
	case dates.Year:
		return c.OnClickMonth
	case dates.Month:
		return c.OnClickDay
	}
	return nil
}
