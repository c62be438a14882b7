// Package ui runs the interactive picker.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/store"
	"tableflip.dev/rangepick/pkg/tui/app"
	"tableflip.dev/rangepick/pkg/tui/components/rangepicker"
	"tableflip.dev/rangepick/pkg/tui/theme"
)

// ErrNoTerminal is returned when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("ui needs an interactive terminal")

// UI runs the interactive picker and prints the committed value.
type UI struct {
	Config      picker.Config
	Persistence store.Persistence
	// SaveAs names the selection to store the last committed value under.
	SaveAs string
	// ShowEvents adds an event log below the picker.
	ShowEvents bool
	Out        io.Writer
}

func (d *UI) Do(ctx context.Context) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ErrNoTerminal
	}
	if d.SaveAs != "" && d.Persistence == nil {
		return errors.New("can not save, no persistence")
	}

	p, err := picker.New(d.Config)
	if err != nil {
		return err
	}
	m := rangepicker.New("rangepick", p, theme.Default(termenv.HasDarkBackground()))
	if _, err := app.Run(ctx, app.New(m, d.ShowEvents)); err != nil {
		return err
	}

	v, ok := m.Committed()
	if !ok {
		return nil
	}

	out := d.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, v.String())

	if d.SaveAs == "" {
		return nil
	}
	cfg := p.Config()
	sel := store.NewSelection(d.SaveAs, cfg.ReturnValue, p.State().View, v, time.Now())
	return d.Persistence.Save(sel)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
