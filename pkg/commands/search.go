package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/clipbucket/pkg/commands/options"
	"tableflip.dev/clipbucket/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Fuzzy search the history and every bucket.",
		Example: `
clipbucket search kubectl
clipbucket search go dev --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			s := search.Search{
				Service: svc,
				Query:   strings.Join(args, " "),
				JSON:    output.JSON,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
