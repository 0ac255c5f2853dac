package commands

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

const installPath = "tableflip.dev/clipbucket/cmd/clipbucket"

// installTarget is the go install argument for ref, a version tag or "latest".
func installTarget(ref string) string {
	if ref == "" {
		ref = "latest"
	}
	return installPath + "@" + ref
}

func addUpgrade(topLevel *cobra.Command) {
	var ref string
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Reinstall clipbucket with go install.",
		Example: `
clipbucket upgrade
clipbucket upgrade --ref v0.2.0
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ex := exec.CommandContext(cmd.Context(), "go", "install", installTarget(ref))
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				return output.HandleError(fmt.Errorf("%w: %s", err, bytes.TrimSpace(out.Bytes())))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "installed %s\n", installTarget(ref))
			return nil
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "latest", "Version tag, branch or commit to install.")

	topLevel.AddCommand(cmd)
}
