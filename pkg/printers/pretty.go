package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/clipbucket/pkg/bucket"
	"tableflip.dev/clipbucket/pkg/history"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// ShowSlot prefixes bucket titles with their 1-based slot number.
	ShowSlot bool
}

const indent = "  "

// Writer returns where output goes.
func (pp *PrettyPrint) Writer() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Writer(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Writer(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.Writer(), title)
	_, _ = c.Fprintf(pp.Writer(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Writer(), " item")
	default:
		_, _ = c.Fprintln(pp.Writer(), " items")
	}
}

// Items prints one clipboard text per entry. Continuation lines of
// multi-line texts are indented under the first.
func (pp *PrettyPrint) Items(items ...string) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.Writer(), " none\n\n")
		return
	}

	t := color.New()
	for _, it := range items {
		lines := strings.Split(it, "\n")
		_, _ = t.Fprintf(pp.Writer(), "%s%s\n", indent, lines[0])
		for _, l := range lines[1:] {
			_, _ = t.Fprintf(pp.Writer(), "%s%s%s\n", indent, indent, l)
		}
	}
	_, _ = t.Fprintln(pp.Writer(), "")
}

func (pp *PrettyPrint) Bucket(b bucket.Bucket) {
	title := b.Title()
	if pp.ShowSlot {
		title = fmt.Sprintf("%d %s", b.ID+1, title)
	}
	pp.TitleWithCount(title, len(b.Items))
	pp.Items(b.Items...)
}

// Overview prints the screen layout: the latest copy, every named bucket,
// then the older history.
func (pp *PrettyPrint) Overview(view history.View, buckets []bucket.Bucket) {
	pp.Title("Latest")
	if view.HasLatest() {
		pp.Items(view.Latest)
	} else {
		pp.Items()
	}
	for _, b := range buckets {
		if b.Empty() {
			continue
		}
		pp.Bucket(b)
	}
	pp.TitleWithCount("Older", len(view.Older))
	pp.Items(view.Older...)
}
