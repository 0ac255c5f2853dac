package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/clipbucket/pkg/commands/options"
	"tableflip.dev/clipbucket/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the latest copy, every bucket and older history.",
		Example: `
clipbucket list
clipbucket list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			l := list.List{
				Service: svc,
				JSON:    output.JSON,
			}
			err = l.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
