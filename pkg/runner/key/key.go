// Package key provides CLI helpers to display the screen's key bindings.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	teaui "tableflip.dev/clipbucket/pkg/runner/tea"
)

// Key prints the key bindings of the interactive screen.
type Key struct {
	Out io.Writer
}

// Do renders the browsing and selecting keys.
func (k *Key) Do(ctx context.Context) error {
	if k.Out == nil {
		k.Out = color.Output
	}
	_, _ = fmt.Fprintln(k.Out, "")
	k.Key(ctx, "Browsing", teaui.NormalKeys)
	_, _ = fmt.Fprintln(k.Out, "")
	k.Key(ctx, "Selecting", teaui.SelectKeys)
	_, _ = fmt.Fprintln(k.Out, "")
	return nil
}

// Key renders one binding table under title.
func (k *Key) Key(_ context.Context, title string, bindings []teaui.Binding) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), bold.Sprint("Action"))
	for _, b := range bindings {
		tbl.AddRow(b.Keys, b.Help)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.Out, tbl)
}
