// Package tokendaemon provides the "token-daemon" command, which runs the
// credential-refresh daemon against a container.
package tokendaemon

import (
	"github.com/spf13/cobra"

	"github.com/leynos/podbot/internal/api"
	"github.com/leynos/podbot/internal/cmdutil"
)

// NewCmdTokenDaemon creates the token-daemon command.
func NewCmdTokenDaemon(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token-daemon CONTAINER_ID",
		Short: "Run the credential-refresh token daemon against a container",
		Args:  cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := api.RunTokenDaemon(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			f.ExitCode = cmdutil.ExitCodeForOutcome(outcome)
			return nil
		},
	}
	return cmd
}
