package dates

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Locale is the formatting context for labels. Each picker owns its own
// Locale; there is no process-wide current locale.
type Locale struct {
	tag   language.Tag
	names *catalog
}

// catalog holds the names and label layouts resolved for one monday locale.
type catalog struct {
	locale   monday.Locale
	months   [12]string
	weekdays [7]string // Sunday first

	monthLayout string
	dayLayout   string
}

// labelLayouts maps a language to its month and day label layouts. Languages
// not listed use "2 January 2006".
var labelLayouts = map[string][2]string{
	"en": {"January 2006", "January 2, 2006"},
	"de": {"January 2006", "2. January 2006"},
	"es": {"January de 2006", "2 de January de 2006"},
	"pt": {"January de 2006", "2 de January de 2006"},
	"ca": {"January de 2006", "2 January 2006"},
	"ja": {"2006年1月", "2006年1月2日"},
	"zh": {"2006年1月", "2006年1月2日"},
	"ko": {"2006년 1월", "2006년 1월 2일"},
	"hu": {"2006. January", "2006. January 2."},
}

var (
	// supported lines up with the matcher's tags; index 0 is the fallback.
	supported []monday.Locale
	matcher   language.Matcher
	catalogs  = map[monday.Locale]*catalog{}
)

func init() {
	locales := monday.ListLocales()
	sort.Slice(locales, func(i, j int) bool { return locales[i] < locales[j] })

	supported = []monday.Locale{monday.LocaleEnUS}
	tags := []language.Tag{language.AmericanEnglish}
	for _, l := range locales {
		if l == monday.LocaleEnUS {
			continue
		}
		t, err := language.Parse(posixToBCP47(string(l)))
		if err != nil {
			continue
		}
		supported = append(supported, l)
		tags = append(tags, t)
	}
	matcher = language.NewMatcher(tags)
	for _, l := range supported {
		catalogs[l] = newCatalog(l)
	}
}

// sunday is any Sunday, used to look up weekday names.
var sunday = time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)

// catalogFor returns the names of l. Catalogs are built once in init and
// never written afterwards.
func catalogFor(l monday.Locale) *catalog {
	if c, ok := catalogs[l]; ok {
		return c
	}
	return catalogs[monday.LocaleEnUS]
}

func newCatalog(l monday.Locale) *catalog {
	c := &catalog{locale: l}
	for m := time.January; m <= time.December; m++ {
		c.months[m-1] = monday.Format(time.Date(2023, m, 1, 12, 0, 0, 0, time.UTC), "January", l)
	}
	for d := 0; d < 7; d++ {
		c.weekdays[d] = firstRunes(monday.Format(sunday.AddDate(0, 0, d), "Mon", l), 2)
	}
	lang, _, _ := strings.Cut(string(l), "_")
	layouts, ok := labelLayouts[lang]
	if !ok {
		layouts = [2]string{"January 2006", "2 January 2006"}
	}
	c.monthLayout, c.dayLayout = layouts[0], layouts[1]
	return c
}

func firstRunes(s string, n int) string {
	r := []rune(strings.TrimSuffix(s, "."))
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

// NewLocale builds a Locale from a BCP 47 or POSIX style tag ("de-DE",
// "en_US.UTF-8"). An empty tag uses the platform default; tags that cannot be
// parsed fall back to English.
func NewLocale(tag string) Locale {
	if strings.TrimSpace(tag) == "" {
		tag = PlatformLocale()
	}
	t, err := language.Parse(posixToBCP47(tag))
	if err != nil {
		t = language.English
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		idx = 0
	}
	return Locale{tag: t, names: catalogFor(supported[idx])}
}

// PlatformLocale reads the locale from the usual environment variables.
func PlatformLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return "en-US"
}

func posixToBCP47(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	switch tag {
	case "C", "POSIX", "":
		return "en-US"
	}
	return strings.ReplaceAll(tag, "_", "-")
}

// Tag returns the parsed language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// String returns the BCP 47 form of the locale.
func (l Locale) String() string {
	return l.tag.String()
}

func (l Locale) catalog() *catalog {
	if l.names == nil {
		return catalogFor(monday.LocaleEnUS)
	}
	return l.names
}

// MonthName returns the full month name.
func (l Locale) MonthName(m time.Month) string {
	return l.catalog().months[m-1]
}

// MonthShort returns the first three letters of the month name.
func (l Locale) MonthShort(m time.Month) string {
	return firstRunes(l.MonthName(m), 3)
}

// WeekdayShort returns the two letter weekday abbreviation.
func (l Locale) WeekdayShort(d time.Weekday) string {
	return l.catalog().weekdays[d]
}

// PeriodLabel renders the period of g starting at t, for example
// "2001 – 2100" for a century or "June 2023" for a month.
func (l Locale) PeriodLabel(g Granularity, t time.Time) (string, error) {
	start, err := PeriodStart(g, t)
	if err != nil {
		return "", err
	}
	c := l.catalog()
	switch g {
	case Century:
		return fmt.Sprintf("%d – %d", start.Year(), start.Year()+99), nil
	case Decade:
		return fmt.Sprintf("%d – %d", start.Year(), start.Year()+9), nil
	case Year:
		return fmt.Sprintf("%d", start.Year()), nil
	case Month:
		return monday.Format(start, c.monthLayout, c.locale), nil
	default:
		return monday.Format(start, c.dayLayout, c.locale), nil
	}
}
