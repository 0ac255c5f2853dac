package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/clipbucket/pkg/runner/paste"
)

func addPaste(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "paste TEXT",
		Short: "Put text on the clipboard and run the configured paste command.",
		Example: `
clipbucket paste "git status"
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: historyCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			p := paste.Paste{Service: svc, Text: args[0]}
			return p.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
