package remove

import (
	"context"
	"errors"

	"tableflip.dev/rangepick/pkg/printers"
	"tableflip.dev/rangepick/pkg/store"
)

// Remove deletes a saved selection and prints the ones left.
type Remove struct {
	Name        string
	Quiet       bool
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}
	if err := n.Persistence.Delete(n.Name); err != nil {
		return err
	}
	if n.Quiet {
		return nil
	}

	all := n.Persistence.List(ctx)
	pp := printers.New(nil)
	pp.NewLine()
	pp.TitleWithCount("Selections", len(all))
	pp.Selections(all...)
	return nil
}
