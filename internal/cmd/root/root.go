// Package root assembles podbot's command tree: the global flags shared by
// every subcommand, and the run/token-daemon/ps/stop/exec subcommands
// themselves.
package root

import (
	"github.com/spf13/cobra"

	"github.com/leynos/podbot/internal/cmd/exec"
	"github.com/leynos/podbot/internal/cmd/ps"
	"github.com/leynos/podbot/internal/cmd/run"
	"github.com/leynos/podbot/internal/cmd/stop"
	"github.com/leynos/podbot/internal/cmd/tokendaemon"
	"github.com/leynos/podbot/internal/cmdutil"
	"github.com/leynos/podbot/pkg/logger"
)

// NewCmdRoot creates the podbot root command, wiring the global --config,
// --engine-socket, and --image flags onto f and registering every
// subcommand.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "podbot",
		Short:         "Run coding agents in sandboxed, ephemeral containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(f.Debug)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&f.ConfigPath, "config", "", "Path to the podbot configuration file")
	cmd.PersistentFlags().StringVar(&f.EngineSocket, "engine-socket", "", "Container engine socket endpoint")
	cmd.PersistentFlags().StringVar(&f.Image, "image", "", "Sandbox container image reference")
	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")

	cmd.AddCommand(run.NewCmdRun(f))
	cmd.AddCommand(tokendaemon.NewCmdTokenDaemon(f))
	cmd.AddCommand(ps.NewCmdPS(f))
	cmd.AddCommand(stop.NewCmdStop(f))
	cmd.AddCommand(exec.NewCmdExec(f))

	return cmd
}
