// Package dates computes period boundaries for the picker granularities and
// carries the locale context used to label them.
package dates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGranularity is returned for tokens outside the five known
// granularities.
var ErrInvalidGranularity = errors.New("invalid granularity")

// Granularity is one level of nesting, from century (coarsest) to day.
type Granularity string

const (
	// Century spans one hundred years starting at a year ending in 01.
	Century Granularity = "century"
	// Decade spans ten years starting at a year ending in 1.
	Decade Granularity = "decade"
	// Year spans one calendar year.
	Year Granularity = "year"
	// Month spans one calendar month.
	Month Granularity = "month"
	// Day is the leaf value type; it is never a view.
	Day Granularity = "day"
)

var all = []Granularity{Century, Decade, Year, Month, Day}

// Views lists the granularities that can be displayed, coarse first.
func Views() []Granularity {
	return []Granularity{Century, Decade, Year, Month}
}

// ParseGranularity converts a token into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
	}
	return g, nil
}

// Valid reports whether g is one of the five granularities.
func (g Granularity) Valid() bool {
	return g.Index() >= 0
}

// IsView reports whether g can be displayed.
func (g Granularity) IsView() bool {
	return g.Valid() && g != Day
}

// Index returns the nesting depth of g, or -1 when g is unknown.
func (g Granularity) Index() int {
	for i, candidate := range all {
		if candidate == g {
			return i
		}
	}
	return -1
}

// Finer returns the next finer granularity. Day has none.
func (g Granularity) Finer() (Granularity, bool) {
	i := g.Index()
	if i < 0 || i == len(all)-1 {
		return "", false
	}
	return all[i+1], true
}

// Coarser returns the next coarser granularity. Century has none.
func (g Granularity) Coarser() (Granularity, bool) {
	i := g.Index()
	if i <= 0 {
		return "", false
	}
	return all[i-1], true
}

func (g Granularity) String() string { return string(g) }
