package execorch

import (
	"context"
	"io"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/google/uuid"

	"github.com/leynos/podbot/internal/engine"
	"github.com/leynos/podbot/internal/signals"
	"github.com/leynos/podbot/pkg/logger"
)

// pollInterval bounds how often a detached or just-streamed exec session
// is re-inspected while waiting for it to finish.
const pollInterval = 50 * time.Millisecond

// Connector is the engine capability the orchestrator drives. engine.Connector
// satisfies it.
type Connector interface {
	CreateExec(ctx context.Context, containerID string, cmd, env []string, tty bool) (string, error)
	StartExecAttached(ctx context.Context, execID string, tty bool) (types.HijackedResponse, error)
	StartExecDetached(ctx context.Context, execID string) error
	InspectExec(ctx context.Context, execID string) (container.ExecInspect, error)
	ResizeExec(ctx context.Context, execID string, height, width uint) error
}

// TerminalSizer is the local-terminal capability needed for an attached,
// tty-enabled session: raw-mode control and dimension queries. term.RawMode
// satisfies it.
type TerminalSizer interface {
	IsTerminal() bool
	GetSize() (width, height int, err error)
	Enable() error
	Restore() error
}

// Runner executes ExecRequests against a Connector, optionally streaming
// through local stdio and a TerminalSizer.
type Runner struct {
	conn   Connector
	sizer  TerminalSizer
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner builds a Runner. sizer may be nil for callers that never run
// attached, tty sessions (e.g. a detached-only API facade path).
func NewRunner(conn Connector, sizer TerminalSizer, stdin io.Reader, stdout, stderr io.Writer) *Runner {
	return &Runner{conn: conn, sizer: sizer, stdin: stdin, stdout: stdout, stderr: stderr}
}

// Run drives the exec state machine: Created -> Started ->
// (Attached: Streaming) -> Inspecting -> Completed | Failed.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	sessionID := uuid.NewString()
	log := logger.WithField("exec_session", sessionID)
	log.Debug().Str("container", req.ContainerID).Bool("tty", req.TTY).Msg("exec session starting")

	execID, err := r.conn.CreateExec(ctx, req.ContainerID, req.Command, req.Env, req.TTY)
	if err != nil {
		return Result{}, err
	}

	var result Result
	if req.Mode == Detached {
		result, err = r.runDetached(ctx, execID, req.ContainerID)
	} else {
		result, err = r.runAttached(ctx, execID, req)
	}
	if err != nil {
		log.Debug().Err(err).Msg("exec session failed")
		return result, err
	}
	log.Debug().Int64("exit_code", result.ExitCode).Msg("exec session completed")
	return result, nil
}

func (r *Runner) runDetached(ctx context.Context, execID, containerID string) (Result, error) {
	if err := r.conn.StartExecDetached(ctx, execID); err != nil {
		return Result{}, err
	}
	return r.pollInspect(ctx, execID, containerID)
}

func (r *Runner) runAttached(ctx context.Context, execID string, req Request) (Result, error) {
	hijacked, err := r.conn.StartExecAttached(ctx, execID, req.TTY)
	if err != nil {
		return Result{}, err
	}
	defer hijacked.Close()

	useTerminal := req.TTY && r.sizer != nil && r.sizer.IsTerminal()
	if useTerminal {
		if err := r.sizer.Enable(); err != nil {
			logger.Debug().Err(err).Msg("failed to enable raw mode")
		}
	}
	defer func() {
		if useTerminal {
			if err := r.sizer.Restore(); err != nil {
				logger.Debug().Err(err).Msg("failed to restore terminal state")
			}
		}
	}()

	var resizer *signals.ResizeHandler
	if useTerminal {
		resizer = signals.NewResizeHandler(
			func(height, width uint) error {
				return r.conn.ResizeExec(ctx, execID, height, width)
			},
			r.sizer.GetSize,
		)
		resizer.Start()
		defer resizer.Stop()
	}

	// stdin forwarder: best-effort, never joined — it may be permanently
	// blocked on a local Read() after the remote side has gone away.
	go func() {
		_, _ = io.Copy(hijacked.Conn, r.stdin)
		_ = hijacked.CloseWrite()
	}()

	outputDone := make(chan error, 1)
	go func() {
		var copyErr error
		if req.TTY {
			_, copyErr = io.Copy(r.stdout, hijacked.Reader)
		} else {
			_, copyErr = stdcopy.StdCopy(r.stdout, r.stderr, hijacked.Reader)
		}
		if copyErr == io.EOF {
			copyErr = nil
		}
		outputDone <- copyErr
	}()

	select {
	case <-ctx.Done():
		return Result{}, &engine.ExecFailedError{Container: req.ContainerID, Message: ctx.Err().Error(), Err: ctx.Err()}
	case copyErr := <-outputDone:
		if copyErr != nil {
			return Result{}, &engine.ExecFailedError{Container: req.ContainerID, Message: copyErr.Error(), Err: copyErr}
		}
	}

	return r.pollInspect(ctx, execID, req.ContainerID)
}

func (r *Runner) pollInspect(ctx context.Context, execID, containerID string) (Result, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		resp, err := r.conn.InspectExec(ctx, execID)
		if err != nil {
			return Result{}, err
		}
		if !resp.Running {
			return Result{ExecID: execID, ExitCode: int64(resp.ExitCode)}, nil
		}

		select {
		case <-ctx.Done():
			return Result{}, &engine.ExecFailedError{Container: containerID, Message: ctx.Err().Error(), Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}
