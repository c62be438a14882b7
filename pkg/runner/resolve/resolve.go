// Package resolve drives a picker without a terminal and reports where it
// ends up.
package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/printers"
	"tableflip.dev/rangepick/pkg/tui/components/grid"
	"tableflip.dev/rangepick/pkg/value"
)

// Resolve replays drill-ups and clicks against a picker and prints the result.
type Resolve struct {
	Config picker.Config
	// Up drill ups are applied before Clicks.
	Up     int
	Clicks []time.Time
	Grid   bool
	JSON   bool
	Out    io.Writer
	Now    func() time.Time
}

// Result builds the picker, replays the input and returns the final state.
func (r *Resolve) Result() (printers.Resolved, *picker.Picker, error) {
	var opts []picker.Option
	if r.Now != nil {
		opts = append(opts, picker.WithClock(r.Now))
	}
	p, err := picker.New(r.Config, opts...)
	if err != nil {
		return printers.Resolved{}, nil, err
	}

	var emitted []string
	p.AddChangeListener(func(v value.Value) {
		emitted = append(emitted, v.String())
	})

	for i := 0; i < r.Up; i++ {
		if !p.DrillUp() {
			break
		}
	}
	for _, c := range r.Clicks {
		start, err := dates.PeriodStart(grid.CellGranularity(p.State().View), c)
		if err != nil {
			return printers.Resolved{}, nil, err
		}
		if err := p.DispatchCellClick(start); err != nil {
			return printers.Resolved{}, nil, err
		}
	}

	nav, err := p.NavigationProps()
	if err != nil {
		return printers.Resolved{}, nil, err
	}
	return printers.Resolved{
		View:            nav.View,
		Views:           nav.Views,
		ActiveStartDate: nav.ActiveStartDate,
		Label:           nav.Label,
		Value:           p.Value().String(),
		Emitted:         emitted,
	}, p, nil
}

func (r *Resolve) Do(_ context.Context) error {
	res, p, err := r.Result()
	if err != nil {
		return err
	}

	if r.JSON {
		out := r.Out
		if out == nil {
			out = color.Output
		}
		b, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.New(r.Out)
	pp.Resolved(res)
	if r.Grid {
		cp, err := p.ContentProps()
		if err != nil {
			return err
		}
		l, err := grid.Build(cp)
		if err != nil {
			return err
		}
		pp.Grid(l)
	}
	return nil
}
