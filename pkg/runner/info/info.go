package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/store"
)

// Info prints the active configuration and store summary.
type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("RANGEPICK_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "RANGEPICK_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Fprintln(out, "RANGEPICK_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	d := n.Config.Picker()
	fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	fmt.Fprintf(out, "Config.detail: %s..%s (view %s)\n", d.MinDetail, d.MaxDetail, d.View)
	fmt.Fprintln(out, "Config.returnValue: ", d.ReturnValue)

	locale := dates.NewLocale(d.Locale)
	fmt.Fprintf(out, "Locale: %s (platform %q)\n", locale, dates.PlatformLocale())
	ct := dates.CalendarType(d.CalendarType)
	if ct == "" {
		ct = dates.CalendarTypeFor(locale)
	}
	fmt.Fprintln(out, "Calendar type: ", ct)

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	fmt.Fprintf(out, "Selections: %d\n", len(n.Persistence.List(ctx)))
	return nil
}
