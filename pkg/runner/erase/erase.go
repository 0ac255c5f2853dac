// Package erase removes clipboard items and whole buckets.
package erase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/clipbucket/pkg/app"
	"tableflip.dev/clipbucket/pkg/printers"
)

// Confirmer asks the user to approve prompt. A nil Confirmer approves everything.
type Confirmer func(prompt string) bool

func (c Confirmer) ok(prompt string) bool {
	return c == nil || c(prompt)
}

// Delete removes Text from the uncategorized history, or from bucket Slot
// (1-based) when Slot is set.
type Delete struct {
	Service *app.Service
	Text    string
	Slot    int
	Confirm Confirmer
	Out     io.Writer
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	if err := n.Service.Activate(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowSlot: true}
	faint := color.New(color.Faint)

	if n.Slot == 0 {
		if !n.Service.Known(n.Text) || n.Service.Locate(n.Text) >= 0 {
			_, _ = faint.Fprintf(pp.Writer(), "%q is not in the clipboard history\n", n.Text)
			return nil
		}
		if !n.Confirm.ok(fmt.Sprintf("Delete %q from history", n.Text)) {
			return nil
		}
		if err := n.Service.DeleteEntry(ctx, n.Text); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(pp.Writer(), "Deleted %q\n", n.Text)
		return nil
	}

	id := n.Slot - 1
	b, err := n.Service.Bucket(id)
	if err != nil {
		return err
	}
	if !b.Contains(n.Text) {
		_, _ = faint.Fprintf(pp.Writer(), "%q is not in %s\n", n.Text, b.Title())
		return nil
	}
	if !n.Confirm.ok(fmt.Sprintf("Delete %q from %s", n.Text, b.Title())) {
		return nil
	}
	if err := n.Service.DeleteBucketEntry(ctx, n.Text, id); err != nil {
		return err
	}
	b, _ = n.Service.Bucket(id)
	pp.NewLine()
	pp.Bucket(b)
	return nil
}

// Bucket clears the name and items of bucket Slot (1-based).
type Bucket struct {
	Service *app.Service
	Slot    int
	Confirm Confirmer
	Out     io.Writer
}

func (n *Bucket) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete bucket, no service")
	}
	if err := n.Service.Activate(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}

	id := n.Slot - 1
	b, err := n.Service.Bucket(id)
	if err != nil {
		return err
	}
	if b.Empty() && len(b.Items) == 0 {
		_, _ = color.New(color.Faint).Fprintf(pp.Writer(), "bucket %d is unused\n", n.Slot)
		return nil
	}
	if !n.Confirm.ok(fmt.Sprintf("Delete bucket %s and its %d items", b.Title(), len(b.Items))) {
		return nil
	}
	if err := n.Service.DeleteBucket(ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(pp.Writer(), "Deleted bucket %s\n", b.Title())
	return nil
}
