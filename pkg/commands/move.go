package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/clipbucket/pkg/commands/options"
	"tableflip.dev/clipbucket/pkg/runner/move"
	"tableflip.dev/clipbucket/pkg/runner/remove"
)

func addMove(topLevel *cobra.Command) {
	bo := &options.BucketOptions{}

	cmd := &cobra.Command{
		Use:   "move TEXT",
		Short: "File a clipboard item into a bucket.",
		Example: `
clipbucket move "kubectl get pods -A" --bucket 1
clipbucket move "https://go.dev" --bucket 2 --name Links
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bo.Validate(true)
		},
		ValidArgsFunction: historyCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			m := move.Move{
				Service: svc,
				Text:    args[0],
				Slot:    bo.Slot,
				Name:    bo.Name,
			}
			return m.Do(context.Background())
		},
	}

	options.AddBucketArgs(cmd, bo)
	options.AddNameArgs(cmd, bo)
	_ = cmd.RegisterFlagCompletionFunc("bucket", bucketCompletions)

	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command) {
	bo := &options.BucketOptions{}

	cmd := &cobra.Command{
		Use:   "remove TEXT",
		Short: "Take an item out of a bucket and back into the history.",
		Example: `
clipbucket remove "kubectl get pods -A" --bucket 1
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bo.Validate(true)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			r := remove.Remove{
				Service: svc,
				Text:    args[0],
				Slot:    bo.Slot,
			}
			return r.Do(context.Background())
		},
	}

	options.AddBucketArgs(cmd, bo)
	_ = cmd.RegisterFlagCompletionFunc("bucket", bucketCompletions)

	topLevel.AddCommand(cmd)
}
