// Package exec provides the "exec" command, which runs a command inside a
// running container, attached or detached.
package exec

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leynos/podbot/internal/api"
	"github.com/leynos/podbot/internal/cmdutil"
	"github.com/leynos/podbot/internal/execorch"
	"github.com/leynos/podbot/internal/term"
	"github.com/leynos/podbot/pkg/logger"
)

// NewCmdExec creates the exec command. Positional args after "--" are the
// command to run; everything before it (besides flags) is the container
// name.
func NewCmdExec(f *cmdutil.Factory) *cobra.Command {
	var detach, tty bool

	cmd := &cobra.Command{
		Use:   "exec CONTAINER [--detach] -- CMD [ARGS...]",
		Short: "Run a command inside a running container",
		Args:  cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			var container string
			var command []string
			if dash <= 0 {
				container = args[0]
				command = args[1:]
			} else {
				container = args[0]
				command = args[dash:]
			}
			if len(command) == 0 {
				return fmt.Errorf("exec: a command is required after --")
			}

			conn, err := f.Connector(cmd.Context())
			if err != nil {
				return err
			}

			mode := execorch.Attached
			if detach {
				mode = execorch.Detached
			}

			sizer := term.NewRawModeStdin()

			logger.SetInteractiveMode(tty && !detach)
			defer logger.SetInteractiveMode(false)

			outcome, err := api.Exec(cmd.Context(), api.ExecParams{
				Connector: conn,
				Sizer:     sizer,
				Container: container,
				Command:   command,
				Mode:      mode,
				TTY:       tty,
				Stdin:     f.Stdin,
				Stdout:    f.Stdout,
				Stderr:    f.Stderr,
			})
			if err != nil {
				return err
			}
			f.ExitCode = cmdutil.ExitCodeForOutcome(outcome)
			return nil
		},
	}

	cmd.Flags().BoolVar(&detach, "detach", false, "Run the command detached, without attaching local streams")
	cmd.Flags().BoolVarP(&tty, "tty", "t", false, "Allocate a pseudo-TTY for the exec session")
	cmd.Flags().SetInterspersed(false)

	return cmd
}
