package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/clipbucket/pkg/commands/options"
	"tableflip.dev/clipbucket/pkg/runner/erase"
)

func addDelete(topLevel *cobra.Command) {
	bo := &options.BucketOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "delete TEXT",
		Short: "Delete an item from the history, or from a bucket with --bucket.",
		Example: `
clipbucket delete "hunter2"
clipbucket delete "old link" --bucket 2 --yes
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bo.Validate(false)
		},
		ValidArgsFunction: historyCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			d := erase.Delete{
				Service: svc,
				Text:    args[0],
				Slot:    bo.Slot,
				Confirm: co.Confirmer(),
			}
			return d.Do(context.Background())
		},
	}

	options.AddBucketArgs(cmd, bo)
	options.AddConfirmArgs(cmd, co)
	_ = cmd.RegisterFlagCompletionFunc("bucket", bucketCompletions)

	topLevel.AddCommand(cmd)
}

func addDeleteBucket(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	d := &erase.Bucket{}

	cmd := &cobra.Command{
		Use:   "delete-bucket BUCKET",
		Short: "Clear a bucket's name and items. The slot stays available.",
		Example: `
clipbucket delete-bucket 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err
			}
			slot, err := options.ParseSlot(args[0])
			d.Slot = slot
			return err
		},
		ValidArgsFunction: bucketCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			d.Service = svc
			d.Confirm = co.Confirmer()
			return d.Do(context.Background())
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
