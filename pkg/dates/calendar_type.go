package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidCalendarType is returned for unknown calendar conventions.
var ErrInvalidCalendarType = errors.New("invalid calendar type")

// CalendarType selects the week convention of the month grid.
type CalendarType string

const (
	// CalendarISO8601 weeks start on Monday and are numbered per ISO 8601.
	CalendarISO8601 CalendarType = "ISO 8601"
	// CalendarUS weeks start on Sunday.
	CalendarUS CalendarType = "US"
	// CalendarArabic weeks start on Saturday.
	CalendarArabic CalendarType = "Arabic"
	// CalendarHebrew weeks start on Sunday.
	CalendarHebrew CalendarType = "Hebrew"
)

var sundayRegions = map[string]bool{
	"US": true, "CA": true, "MX": true, "BR": true, "JP": true, "PH": true, "KR": true, "TW": true,
}

// ParseCalendarType accepts the canonical names case-insensitively, plus
// "iso" as a shorthand. An empty string is returned unchanged so that callers
// can derive the type from the locale.
func ParseCalendarType(s string) (CalendarType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "iso 8601", "iso8601", "iso":
		return CalendarISO8601, nil
	case "us":
		return CalendarUS, nil
	case "arabic":
		return CalendarArabic, nil
	case "hebrew":
		return CalendarHebrew, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCalendarType, s)
}

// CalendarTypeFor derives the calendar convention used in a locale.
func CalendarTypeFor(l Locale) CalendarType {
	base, _ := l.Tag().Base()
	switch base.String() {
	case "ar":
		return CalendarArabic
	case "he":
		return CalendarHebrew
	}
	region, _ := l.Tag().Region()
	if sundayRegions[region.String()] {
		return CalendarUS
	}
	return CalendarISO8601
}

// WeekStart returns the first day of the week.
func (c CalendarType) WeekStart() time.Weekday {
	switch c {
	case CalendarUS, CalendarHebrew:
		return time.Sunday
	case CalendarArabic:
		return time.Saturday
	default:
		return time.Monday
	}
}

// WeekNumber numbers the week containing t. ISO 8601 uses ISO weeks; the
// other conventions count weeks from the one containing January 1.
func (c CalendarType) WeekNumber(t time.Time) int {
	if c == CalendarISO8601 || c == "" {
		_, week := t.ISOWeek()
		return week
	}
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	offset := (int(jan1.Weekday()) - int(c.WeekStart()) + 7) % 7
	return (t.YearDay()-1+offset)/7 + 1
}

func (c CalendarType) String() string { return string(c) }
