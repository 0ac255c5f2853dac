// Package info reports where clipbucket keeps its data and how it is configured.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/clipbucket/pkg/bucket"
	"tableflip.dev/clipbucket/pkg/history"
	"tableflip.dev/clipbucket/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

// Do prints the configuration and a summary of the stored data. It never
// touches the clipboard.
func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("CLIPBUCKET_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "CLIPBUCKET_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "CLIPBUCKET_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.history.depth: ", n.Config.HistoryDepth())
	_, _ = fmt.Fprintln(out, "Config.clipboard.read-command: ", orNone(n.Config.ReadCommand()))
	_, _ = fmt.Fprintln(out, "Config.clipboard.paste-command: ", orNone(n.Config.PasteCommand()))

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	buckets, err := (&bucket.Store{Persistence: n.Persistence}).Load()
	if err != nil {
		return err
	}
	stored, err := (&history.Store{Persistence: n.Persistence}).Load()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Buckets:\n")
	for _, b := range buckets {
		_, _ = fmt.Fprintf(out, "  %d %s (%d)\n", b.ID+1, b.Title(), len(b.Items))
	}
	_, _ = fmt.Fprintf(out, "History: %d stored\n", len(stored))
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
