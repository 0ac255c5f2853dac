// Package remove takes items out of a bucket and back into the history.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/clipbucket/pkg/app"
	"tableflip.dev/clipbucket/pkg/printers"
)

// Remove returns Text from bucket Slot (1-based) to the front of the history.
type Remove struct {
	Service *app.Service
	Text    string
	Slot    int
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if err := n.Service.Activate(ctx); err != nil {
		return err
	}

	id := n.Slot - 1
	b, err := n.Service.Bucket(id)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowSlot: true}
	if !b.Contains(n.Text) {
		_, _ = fmt.Fprintf(pp.Writer(), "%q is not in %s\n", n.Text, b.Title())
		return nil
	}
	if err := n.Service.RemoveFromBucket(ctx, n.Text, id); err != nil {
		return err
	}

	b, _ = n.Service.Bucket(id)
	pp.NewLine()
	pp.Bucket(b)
	return nil
}
