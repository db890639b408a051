// Package execorch runs an attached or detached command in a running
// container, forwarding stdio streams when attached, propagating terminal
// resize events, and capturing the exit code.
package execorch

import "github.com/leynos/podbot/internal/coreerr"

// Mode selects whether an exec session streams stdio locally or runs
// detached in the background.
type Mode int

const (
	// Attached streams stdin/stdout/stderr between the local terminal and
	// the exec session.
	Attached Mode = iota
	// Detached starts the command without attaching local streams.
	Detached
)

// Request describes a command to run inside a container.
type Request struct {
	ContainerID string
	Command     []string
	Mode        Mode
	TTY         bool
	Env         []string
}

// Validate checks the request's invariants: the command must be non-empty.
func (r Request) Validate() error {
	if len(r.Command) == 0 {
		return &coreerr.MissingRequiredError{Field: "command"}
	}
	return nil
}

// Result is the outcome of a completed exec session. An absent
// engine-reported exit code is always a failure — it is never synthesized.
type Result struct {
	ExecID   string
	ExitCode int64
}
