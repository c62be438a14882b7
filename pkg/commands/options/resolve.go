package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/value"
)

// ResolveOptions
type ResolveOptions struct {
	Clicks []string
	Up     int
	Grid   bool
}

func AddResolveArgs(cmd *cobra.Command, o *ResolveOptions) {
	cmd.Flags().StringSliceVar(&o.Clicks, "click", nil,
		`Activate the cell containing this date, repeatable, example: --click=2023-06-01 --click=2023-06-15.`)
	cmd.Flags().IntVar(&o.Up, "up", 0,
		"Drill up this many views before clicking.")
	cmd.Flags().BoolVar(&o.Grid, "grid", false,
		"Print the grid of the final view.")
}

// GetClicks parses the click instants.
func (o *ResolveOptions) GetClicks() ([]time.Time, error) {
	clicks := make([]time.Time, 0, len(o.Clicks))
	for _, c := range o.Clicks {
		v, err := value.Parse(c, time.Local)
		if err != nil {
			return nil, err
		}
		if v.IsAbsent() || v.IsPair() {
			return nil, fmt.Errorf("click %q: expected a single date", c)
		}
		clicks = append(clicks, v.From())
	}
	return clicks, nil
}
