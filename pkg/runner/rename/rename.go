// Package rename changes the name of a bucket.
package rename

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/clipbucket/pkg/app"
	"tableflip.dev/clipbucket/pkg/printers"
)

// Rename sets the name of bucket Slot (1-based). Items are untouched.
type Rename struct {
	Service *app.Service
	Slot    int
	Name    string
	Out     io.Writer
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rename, no service")
	}
	if strings.TrimSpace(n.Name) == "" {
		return errors.New("a bucket name is required")
	}
	if err := n.Service.Activate(ctx); err != nil {
		return err
	}

	id := n.Slot - 1
	if err := n.Service.RenameBucket(ctx, id, n.Name); err != nil {
		return err
	}
	b, err := n.Service.Bucket(id)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowSlot: true}
	pp.NewLine()
	pp.Bucket(b)
	return nil
}
