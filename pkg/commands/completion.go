package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/clipbucket/pkg/bucket"
	"tableflip.dev/clipbucket/pkg/history"
	"tableflip.dev/clipbucket/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(clipbucket completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(clipbucket completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// bucketCompletions offers slot numbers described by their bucket names.
// It reads stored data only; the clipboard is not scanned.
func bucketCompletions(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	buckets, err := (&bucket.Store{Persistence: p}).Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return slotCompletions(buckets), cobra.ShellCompDirectiveNoFileComp
}

func slotCompletions(buckets []bucket.Bucket) []string {
	out := make([]string, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, fmt.Sprintf("%d\t%s", b.ID+1, b.Title()))
	}
	return out
}

// historyCompletions offers stored history and bucket items for TEXT arguments.
func historyCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	p, err := store.Load(nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	stored, err := (&history.Store{Persistence: p}).Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	buckets, err := (&bucket.Store{Persistence: p}).Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return textCompletions(stored, buckets, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func textCompletions(stored []string, buckets []bucket.Bucket, prefix string) []string {
	var out []string
	add := func(text string) {
		if !strings.Contains(text, "\n") && strings.HasPrefix(text, prefix) {
			out = append(out, text)
		}
	}
	for _, t := range stored {
		add(t)
	}
	for _, b := range buckets {
		for _, t := range b.Items {
			add(t)
		}
	}
	return out
}
