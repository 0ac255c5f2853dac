package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/clipbucket/pkg/runner/capture"
)

func addCapture(topLevel *cobra.Command) {
	c := &capture.Capture{}

	cmd := &cobra.Command{
		Use:   "capture [TEXT]",
		Short: "Add text, or the current selection, to the clipboard history.",
		Example: `
clipbucket capture remember this
clipbucket capture --selection
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if c.Selection {
				if len(args) > 0 {
					return errors.New("pass TEXT or --selection, not both")
				}
				return nil
			}
			if len(args) < 1 {
				return errors.New("requires text to capture, or --selection")
			}
			c.Text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			c.Service = svc
			return c.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&c.Selection, "selection", "s", false,
		"Capture the primary selection instead of TEXT.")

	topLevel.AddCommand(cmd)
}
