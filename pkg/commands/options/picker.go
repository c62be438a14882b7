package options

import (
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/store"
	"tableflip.dev/rangepick/pkg/value"
)

// PickerOptions are the flags shared by every command that builds a picker.
// Unset flags fall back to the loaded config.
type PickerOptions struct {
	MinDetail    string
	MaxDetail    string
	View         string
	Value        string
	ReturnValue  string
	Locale       string
	CalendarType string
	WeekNumbers  bool
}

func AddPickerArgs(cmd *cobra.Command, o *PickerOptions) {
	cmd.Flags().StringVar(&o.MinDetail, "min-detail", "",
		base.Wrap80("Coarsest view the user may reach: century, decade, year or month."))
	cmd.Flags().StringVar(&o.MaxDetail, "max-detail", "",
		base.Wrap80("Finest view the user may reach: century, decade, year or month."))
	cmd.Flags().StringVar(&o.View, "view", "",
		base.Wrap80("Initial view. Out of range views are clamped to the finest allowed view."))
	cmd.Flags().StringVar(&o.Value, "value", "",
		`Initial value, example: --value="2023-06-15" or --value="2023-06-01..2023-06-30".`)
	cmd.Flags().StringVar(&o.ReturnValue, "return", "",
		"Shape of committed values: start, end or range.")
	cmd.Flags().StringVar(&o.Locale, "locale", "",
		"BCP 47 locale used for labels, defaults to the platform locale.")
	cmd.Flags().StringVar(&o.CalendarType, "calendar-type", "",
		`Week layout: "ISO 8601", US, Arabic or Hebrew. Derived from the locale when unset.`)
	cmd.Flags().BoolVar(&o.WeekNumbers, "week-numbers", false,
		"Show week numbers in the month view.")
}

// Config merges the flags over defaults. Only flags set on cmd override.
func (o *PickerOptions) Config(cmd *cobra.Command, defaults store.PickerDefaults) (picker.Config, error) {
	pick := func(flag, set, fallback string) string {
		if cmd != nil && cmd.Flags().Changed(flag) {
			return set
		}
		return fallback
	}

	cfg := picker.Config{Locale: pick("locale", o.Locale, defaults.Locale)}
	var err error
	if cfg.MinDetail, err = parseGranularity(pick("min-detail", o.MinDetail, defaults.MinDetail)); err != nil {
		return picker.Config{}, err
	}
	if cfg.MaxDetail, err = parseGranularity(pick("max-detail", o.MaxDetail, defaults.MaxDetail)); err != nil {
		return picker.Config{}, err
	}
	// The view is clamped by the picker, so it is not validated here.
	cfg.View = dates.Granularity(pick("view", o.View, defaults.View))
	if rv := pick("return", o.ReturnValue, defaults.ReturnValue); rv != "" {
		if cfg.ReturnValue, err = value.ParseReturnMode(rv); err != nil {
			return picker.Config{}, err
		}
	}
	if cfg.CalendarType, err = dates.ParseCalendarType(pick("calendar-type", o.CalendarType, defaults.CalendarType)); err != nil {
		return picker.Config{}, err
	}
	cfg.ShowWeekNumbers = defaults.ShowWeekNumbers
	if cmd != nil && cmd.Flags().Changed("week-numbers") {
		cfg.ShowWeekNumbers = o.WeekNumbers
	}
	if cfg.Value, err = value.Parse(o.Value, time.Local); err != nil {
		return picker.Config{}, err
	}
	return cfg, nil
}

func parseGranularity(s string) (dates.Granularity, error) {
	if s == "" {
		return "", nil
	}
	return dates.ParseGranularity(s)
}
