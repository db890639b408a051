// Package term wraps golang.org/x/term for putting a local terminal into
// raw mode and querying its dimensions, for the exec orchestrator's
// attached flow. The resize signal listener lives in package signals.
package term

import (
	"os"

	"golang.org/x/term"
)

// RawMode manages putting a single file descriptor into raw mode and
// restoring it afterwards.
type RawMode struct {
	fd       int
	oldState *term.State
	isRaw    bool
}

// NewRawMode creates a RawMode manager for the given file descriptor.
func NewRawMode(fd int) *RawMode {
	return &RawMode{fd: fd}
}

// NewRawModeStdin creates a RawMode manager for stdin.
func NewRawModeStdin() *RawMode {
	return NewRawMode(int(os.Stdin.Fd()))
}

// Enable puts the terminal into raw mode. Idempotent.
func (r *RawMode) Enable() error {
	if r.isRaw {
		return nil
	}
	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		return err
	}
	r.oldState = oldState
	r.isRaw = true
	return nil
}

// Restore returns the terminal to its pre-Enable state. Safe to call even
// when Enable was never called or already restored.
func (r *RawMode) Restore() error {
	if !r.isRaw || r.oldState == nil {
		return nil
	}
	err := term.Restore(r.fd, r.oldState)
	if err == nil {
		r.isRaw = false
	}
	return err
}

// IsTerminal reports whether the file descriptor refers to a terminal.
func (r *RawMode) IsTerminal() bool {
	return term.IsTerminal(r.fd)
}

// GetSize returns the current terminal dimensions.
func (r *RawMode) GetSize() (width, height int, err error) {
	return term.GetSize(r.fd)
}
