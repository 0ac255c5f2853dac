package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/clipbucket/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "clipbucket",
		Short: base.Wrap80("Sort clipboard history into named buckets."),
		Long: base.Wrap80("clipbucket reads recent clipboard history and lets you file " +
			"items into up to five named buckets, paste them back, or delete them. " +
			"Run without a subcommand to open the interactive screen."),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runUI()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addMove(topLevel)
	addRemove(topLevel)
	addRename(topLevel)
	addDelete(topLevel)
	addDeleteBucket(topLevel)
	addPaste(topLevel)
	addCapture(topLevel)
	addSearch(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
	addVersion(topLevel)
}
