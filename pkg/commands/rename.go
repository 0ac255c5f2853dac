package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/clipbucket/pkg/commands/options"
	"tableflip.dev/clipbucket/pkg/runner/rename"
)

func addRename(topLevel *cobra.Command) {
	r := &rename.Rename{}

	cmd := &cobra.Command{
		Use:   "rename BUCKET NAME",
		Short: "Rename a bucket.",
		Example: `
clipbucket rename 2 Snippets
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return cobra.MinimumNArgs(2)(cmd, args)
			}
			slot, err := options.ParseSlot(args[0])
			if err != nil {
				return err
			}
			r.Slot = slot
			r.Name = strings.Join(args[1:], " ")
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return bucketCompletions(cmd, args, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			r.Service = svc
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
