// Package capture adds a text, typically the current selection, to the history.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/clipbucket/pkg/app"
	"tableflip.dev/clipbucket/pkg/printers"
)

// Capture prepends Text to the uncategorized history. With Selection set
// the text is read from the primary selection instead.
type Capture struct {
	Service   *app.Service
	Text      string
	Selection bool
	Out       io.Writer
}

func (n *Capture) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not capture, no service")
	}
	if err := n.Service.Activate(ctx); err != nil {
		return err
	}

	text := n.Text
	if n.Selection {
		if n.Service.Clipboard == nil {
			return app.ErrNoClipboard
		}
		sel, err := n.Service.Clipboard.Selection(ctx)
		if err != nil {
			return fmt.Errorf("capture: read selection: %w", err)
		}
		text = sel
	}

	pp := printers.PrettyPrint{Out: n.Out}
	added, err := n.Service.Capture(ctx, text)
	if err != nil {
		return err
	}
	if !added {
		_, _ = color.New(color.Faint).Fprintln(pp.Writer(), "nothing captured")
		return nil
	}
	pp.NewLine()
	pp.Title("Latest")
	pp.Items(n.Service.View().Latest)
	return nil
}
