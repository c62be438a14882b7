// Package views resolves which granularities a picker may display.
package views

import (
	"errors"
	"fmt"

	"tableflip.dev/rangepick/pkg/dates"
)

// ErrInvalidBounds is returned when MinDetail is finer than MaxDetail.
var ErrInvalidBounds = errors.New("invalid detail bounds")

// Bounds is the permitted view window [Min, Max].
type Bounds struct {
	Min dates.Granularity
	Max dates.Granularity
}

// NewBounds validates min and max and returns the window between them.
func NewBounds(min, max dates.Granularity) (Bounds, error) {
	b := Bounds{Min: min, Max: max}
	return b, b.Validate()
}

// Validate checks that both ends are views and Min is not finer than Max.
func (b Bounds) Validate() error {
	for _, g := range []dates.Granularity{b.Min, b.Max} {
		if !g.IsView() {
			return fmt.Errorf("%w: %q is not a view", dates.ErrInvalidGranularity, string(g))
		}
	}
	if b.Min.Index() > b.Max.Index() {
		return fmt.Errorf("%w: minDetail %s is finer than maxDetail %s", ErrInvalidBounds, b.Min, b.Max)
	}
	return nil
}

// Allowed returns the views between Min and Max inclusive, coarse first.
func Allowed(b Bounds) []dates.Granularity {
	all := dates.Views()
	lo, hi := indexOf(all, b.Min), indexOf(all, b.Max)
	if lo < 0 || hi < 0 || lo > hi {
		return nil
	}
	return all[lo : hi+1]
}

// Resolve returns requested when it is allowed and the most detailed allowed
// view otherwise.
func Resolve(b Bounds, requested dates.Granularity) dates.Granularity {
	allowed := Allowed(b)
	if indexOf(allowed, requested) >= 0 {
		return requested
	}
	if len(allowed) == 0 {
		return ""
	}
	return allowed[len(allowed)-1]
}

// IsAllowed reports whether v is inside the window.
func IsAllowed(b Bounds, v dates.Granularity) bool {
	return indexOf(Allowed(b), v) >= 0
}

// CanDrillDown reports whether v is not the most detailed allowed view.
func CanDrillDown(b Bounds, v dates.Granularity) bool {
	allowed := Allowed(b)
	return indexOf(allowed, v) < len(allowed)-1
}

// CanDrillUp reports whether v is allowed and not the coarsest allowed view.
func CanDrillUp(b Bounds, v dates.Granularity) bool {
	return indexOf(Allowed(b), v) > 0
}

// Finer returns the allowed view after v. A view outside the window drills
// into the coarsest allowed view.
func Finer(b Bounds, v dates.Granularity) (dates.Granularity, bool) {
	if !CanDrillDown(b, v) {
		return "", false
	}
	allowed := Allowed(b)
	return allowed[indexOf(allowed, v)+1], true
}

// Coarser returns the allowed view before v.
func Coarser(b Bounds, v dates.Granularity) (dates.Granularity, bool) {
	if !CanDrillUp(b, v) {
		return "", false
	}
	allowed := Allowed(b)
	return allowed[indexOf(allowed, v)-1], true
}

// ValueType is the granularity one level finer than Max; committed values
// are expressed at this resolution.
func ValueType(b Bounds) dates.Granularity {
	g, ok := b.Max.Finer()
	if !ok {
		return dates.Day
	}
	return g
}

func indexOf(list []dates.Granularity, g dates.Granularity) int {
	for i, candidate := range list {
		if candidate == g {
			return i
		}
	}
	return -1
}
