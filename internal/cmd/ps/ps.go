// Package ps provides the "ps" command, which lists podbot-managed
// containers.
package ps

import (
	"github.com/spf13/cobra"

	"github.com/leynos/podbot/internal/api"
	"github.com/leynos/podbot/internal/cmdutil"
)

// NewCmdPS creates the ps command.
func NewCmdPS(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ps",
		Short: "List podbot-managed containers",
		Args:  cmdutil.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := api.ListContainers(cmd.Context())
			if err != nil {
				return err
			}
			f.ExitCode = cmdutil.ExitCodeForOutcome(outcome)
			return nil
		},
	}
	return cmd
}
