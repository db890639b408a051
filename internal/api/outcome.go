// Package api exposes the typed orchestration functions an adapter calls
// into: exec, run_agent, stop_container, list_containers, and
// run_token_daemon. None of them write to stdout/stderr or exit the
// process; they return a CommandOutcome and let the adapter decide how to
// surface it.
package api

// CommandOutcome is the result of running a command: either it completed
// with no distinguished exit status (Success), or it ran to completion
// with a specific exit code (CommandExit).
type CommandOutcome struct {
	exit   int64
	isExit bool
}

// Success reports that a command completed with no distinguished exit code.
func Success() CommandOutcome {
	return CommandOutcome{}
}

// CommandExit reports that a command completed with the given exit code.
func CommandExit(code int64) CommandOutcome {
	return CommandOutcome{exit: code, isExit: true}
}

// IsSuccess reports whether this outcome is the no-exit-code Success case.
func (o CommandOutcome) IsSuccess() bool {
	return !o.isExit
}

// ExitCode returns the carried exit code and true when this outcome is a
// CommandExit; otherwise it returns (0, false).
func (o CommandOutcome) ExitCode() (int64, bool) {
	return o.exit, o.isExit
}
