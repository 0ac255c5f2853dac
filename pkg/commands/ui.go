package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/clipbucket/pkg/runner/list"
	"tableflip.dev/clipbucket/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive clipboard screen",
		Example: `
clipbucket ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runUI()
		},
	}

	topLevel.AddCommand(cmd)
}

// runUI opens the screen, or prints the list when stdout is not a terminal.
func runUI() error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		l := list.List{Service: svc}
		return l.Do(context.Background())
	}
	i := ui.UI{Service: svc}
	return i.Do(context.Background())
}
