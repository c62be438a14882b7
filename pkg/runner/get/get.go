package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/rangepick/pkg/printers"
	"tableflip.dev/rangepick/pkg/store"
)

// Get prints one saved selection by name, or all of them.
type Get struct {
	Name        string
	JSON        bool
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	var list []*store.Selection
	if n.Name != "" {
		s, err := n.Persistence.Get(n.Name)
		if err != nil {
			return err
		}
		list = []*store.Selection{s}
	} else {
		list = n.Persistence.List(ctx)
	}

	if n.JSON {
		out := n.Out
		if out == nil {
			out = color.Output
		}
		b, err := json.Marshal(list)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.New(n.Out)
	pp.NewLine()
	pp.TitleWithCount("Selections", len(list))
	pp.Selections(list...)
	return nil
}
