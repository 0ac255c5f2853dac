// Package search fuzzy-finds clipboard texts across history and buckets.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/clipbucket/pkg/app"
)

// Search prints every history and bucket item matching Query, best first.
type Search struct {
	Service *app.Service
	Query   string
	JSON    bool
	Out     io.Writer
}

func (n *Search) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not search, no service")
	}
	if err := n.Service.Activate(ctx); err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	matches := n.Service.Search(n.Query)
	if n.JSON {
		b, err := json.Marshal(matches)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	if len(matches) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(out, " no matches")
		return nil
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 80
	tbl.AddRow(bold.Sprint("Where"), bold.Sprint("Text"))
	for _, m := range matches {
		where := "history"
		if m.BucketID >= 0 {
			where = fmt.Sprintf("%d %s", m.BucketID+1, m.Bucket)
		}
		tbl.AddRow(where, firstLine(m.Text))
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
