// Package list prints the clipboard history and buckets.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/clipbucket/pkg/app"
	"tableflip.dev/clipbucket/pkg/bucket"
	"tableflip.dev/clipbucket/pkg/printers"
)

// List activates the service and prints what the screen would show.
type List struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

// Output is the --json shape of List.
type Output struct {
	Latest  string          `json:"latest,omitempty"`
	Buckets []bucket.Bucket `json:"buckets"`
	Older   []string        `json:"older"`
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	if err := n.Service.Activate(ctx); err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	view := n.Service.View()
	if n.JSON {
		b, err := json.Marshal(Output{Latest: view.Latest, Buckets: n.Service.Buckets(), Older: view.Older})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out, ShowSlot: true}
	pp.NewLine()
	pp.Overview(view, n.Service.Buckets())
	return nil
}
