package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/clipbucket/pkg/runner/info"
	"tableflip.dev/clipbucket/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where buckets are stored.",
		Example: `
clipbucket info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
