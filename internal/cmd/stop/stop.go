// Package stop provides the "stop" command, which stops a running
// container.
package stop

import (
	"github.com/spf13/cobra"

	"github.com/leynos/podbot/internal/api"
	"github.com/leynos/podbot/internal/cmdutil"
)

// NewCmdStop creates the stop command.
func NewCmdStop(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop CONTAINER",
		Short: "Stop a running container",
		Args:  cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := api.StopContainer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			f.ExitCode = cmdutil.ExitCodeForOutcome(outcome)
			return nil
		},
	}
	return cmd
}
