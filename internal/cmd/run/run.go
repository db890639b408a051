// Package run provides the "run" command, which starts a coding agent in a
// fresh sandboxed container.
package run

import (
	"github.com/spf13/cobra"

	"github.com/leynos/podbot/internal/api"
	"github.com/leynos/podbot/internal/cmdutil"
	"github.com/leynos/podbot/internal/config"
)

// NewCmdRun creates the run command.
func NewCmdRun(f *cmdutil.Factory) *cobra.Command {
	var repo, branch, agent, agentMode string

	cmd := &cobra.Command{
		Use:   "run --repo OWNER/NAME --branch BRANCH",
		Short: "Run a coding agent against a repository in a sandboxed container",
		Args:  cmdutil.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config()
			if err != nil {
				return err
			}

			if agent != "" {
				cfg.Agent.Kind = config.AgentKind(agent)
			}
			if agentMode != "" {
				cfg.Agent.Mode = config.AgentMode(agentMode)
			}

			// repo/branch select what the agent checks out once inside the
			// container; the CORE only starts the sandbox, so these are
			// accepted here but carried no further than argument parsing.
			outcome, err := api.RunAgent(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			f.ExitCode = cmdutil.ExitCodeForOutcome(outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", "", "Repository to check out, as OWNER/NAME")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to check out")
	cmd.Flags().StringVar(&agent, "agent", "", "Coding agent to run (claude|codex)")
	cmd.Flags().StringVar(&agentMode, "agent-mode", "", "Agent operating mode (podbot)")
	_ = cmd.MarkFlagRequired("repo")
	_ = cmd.MarkFlagRequired("branch")

	return cmd
}
