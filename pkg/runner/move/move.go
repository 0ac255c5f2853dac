// Package move files clipboard history into buckets.
package move

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/clipbucket/pkg/app"
	"tableflip.dev/clipbucket/pkg/printers"
)

// Move files Text into bucket Slot (1-based). Name creates the bucket when
// the slot is unused.
type Move struct {
	Service *app.Service
	Text    string
	Slot    int
	Name    string
	Out     io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}
	if err := n.Service.Activate(ctx); err != nil {
		return err
	}
	if !n.Service.Known(n.Text) {
		return fmt.Errorf("%q is not in the clipboard history", n.Text)
	}

	id := n.Slot - 1
	b, err := n.Service.Bucket(id)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(n.Name)

	switch {
	case b.Empty() && name == "":
		return fmt.Errorf("bucket %d is unused, pass --name to create it", n.Slot)
	case b.Empty():
		if _, err := n.Service.MoveToNewBucket(ctx, n.Text, id, name); err != nil {
			return err
		}
	case name != "" && name != b.Name:
		return fmt.Errorf("bucket %d is already named %q", n.Slot, b.Name)
	default:
		if err := n.Service.MoveToBucket(ctx, n.Text, id); err != nil {
			return err
		}
	}

	b, err = n.Service.Bucket(id)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowSlot: true}
	pp.NewLine()
	pp.Bucket(b)
	return nil
}
