package api

import (
	"context"
	"io"

	"github.com/leynos/podbot/internal/execorch"
)

// ExecParams carries everything exec needs to run one command: the engine
// capability, the target container, the command itself, and the local
// streams an attached session forwards through.
type ExecParams struct {
	Connector execorch.Connector
	Sizer     execorch.TerminalSizer
	Container string
	Command   []string
	Env       []string
	Mode      execorch.Mode
	TTY       bool
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
}

// Exec runs a command in a running container, attached or detached per
// params.Mode, and reports its outcome. Exit code 0 maps to Success; any
// other exit code maps to CommandExit. Engine and validation errors
// propagate unchanged.
func Exec(ctx context.Context, params ExecParams) (CommandOutcome, error) {
	runner := execorch.NewRunner(params.Connector, params.Sizer, params.Stdin, params.Stdout, params.Stderr)

	result, err := runner.Run(ctx, execorch.Request{
		ContainerID: params.Container,
		Command:     params.Command,
		Mode:        params.Mode,
		TTY:         params.TTY,
		Env:         params.Env,
	})
	if err != nil {
		return CommandOutcome{}, err
	}

	if result.ExitCode == 0 {
		return Success(), nil
	}
	return CommandExit(result.ExitCode), nil
}
