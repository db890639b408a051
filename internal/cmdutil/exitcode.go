package cmdutil

import "github.com/leynos/podbot/internal/api"

// adapterErrorExitCode is the conventional exit code for adapter/library
// errors, distinct from any command exit code a CommandOutcome might carry.
const adapterErrorExitCode = 1

// ExitCodeForOutcome maps a CommandOutcome to a process exit code: 0 for
// Success, otherwise the carried exit code narrowed and clamped to [0, 255].
func ExitCodeForOutcome(outcome api.CommandOutcome) int {
	code, isExit := outcome.ExitCode()
	if !isExit {
		return 0
	}
	return clampExitCode(code)
}

// ExitCodeForError returns the conventional non-zero exit code used when an
// adapter or library call fails before producing a CommandOutcome.
func ExitCodeForError(err error) int {
	if err == nil {
		return 0
	}
	return adapterErrorExitCode
}

func clampExitCode(code int64) int {
	switch {
	case code < 0:
		return 0
	case code > 255:
		return 255
	default:
		return int(code)
	}
}
