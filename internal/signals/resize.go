// Package signals provides OS signal utilities for terminal resize
// propagation. This is a leaf package — stdlib only, no internal imports.
package signals

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ResizeHandler listens for SIGWINCH and forwards the new terminal
// dimensions through resizeFunc. It takes closures for resize and
// size-query operations so the caller decides what to resize and how to
// measure it, keeping this package free of terminal or engine imports.
type ResizeHandler struct {
	sigChan    chan os.Signal
	resizeFunc func(height, width uint) error
	getSize    func() (width, height int, err error)
	done       chan struct{}
	stopOnce   sync.Once
}

// NewResizeHandler creates a new resize handler.
//
//   - resizeFunc is called with (height, width) whenever SIGWINCH arrives.
//   - getSize returns the current terminal dimensions (width, height).
func NewResizeHandler(resizeFunc func(height, width uint) error, getSize func() (width, height int, err error)) *ResizeHandler {
	return &ResizeHandler{
		sigChan:    make(chan os.Signal, 1),
		resizeFunc: resizeFunc,
		getSize:    getSize,
		done:       make(chan struct{}),
	}
}

// Start begins listening for resize signals and performs one initial
// resize using the current terminal size. The initial resize is sent
// twice: once nudged to height+1/width+1, then again at the real size.
// Some TUIs only redraw on a dimension change, so the nudge forces a
// redraw even when the terminal size hasn't actually changed since the
// exec session started.
func (h *ResizeHandler) Start() {
	signal.Notify(h.sigChan, syscall.SIGWINCH)
	h.nudgeResize()
	go h.handle()
}

// Stop stops listening for resize signals. Safe to call multiple times.
func (h *ResizeHandler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
	})
}

func (h *ResizeHandler) handle() {
	defer func() {
		recover() //nolint:revive // resize listening is best-effort
	}()
	for {
		select {
		case <-h.done:
			return
		case <-h.sigChan:
			h.doResize()
		}
	}
}

func (h *ResizeHandler) doResize() {
	if h.getSize == nil || h.resizeFunc == nil {
		return
	}
	width, height, err := h.getSize()
	if err != nil {
		return
	}
	_ = h.resizeFunc(uint(height), uint(width))
}

// nudgeResize sends the initial size as height+1/width+1 before the real
// size, so a remote TUI that only redraws on an actual dimension change
// still repaints once the exec session is attached.
func (h *ResizeHandler) nudgeResize() {
	if h.getSize == nil || h.resizeFunc == nil {
		return
	}
	width, height, err := h.getSize()
	if err != nil {
		return
	}
	_ = h.resizeFunc(uint(height+1), uint(width+1))
	_ = h.resizeFunc(uint(height), uint(width))
}
