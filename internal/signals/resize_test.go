package signals

import (
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeHandler_InitialResizeOnStart(t *testing.T) {
	var mu sync.Mutex
	var calls []string

	getSize := func() (int, int, error) { return 80, 24, nil }
	resizeFunc := func(height, width uint) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, "resized")
		return nil
	}

	h := NewResizeHandler(resizeFunc, getSize)
	h.Start()
	defer h.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 2, "the initial resize nudges height+1/width+1 then sends the real size")
}

func TestResizeHandler_InitialResizeNudgesBeforeRealSize(t *testing.T) {
	var mu sync.Mutex
	var heights, widths []uint

	getSize := func() (int, int, error) { return 80, 24, nil }
	resizeFunc := func(height, width uint) error {
		mu.Lock()
		defer mu.Unlock()
		heights = append(heights, height)
		widths = append(widths, width)
		return nil
	}

	h := NewResizeHandler(resizeFunc, getSize)
	h.Start()
	defer h.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, heights, 2)
	assert.Equal(t, []uint{25, 24}, heights)
	assert.Equal(t, []uint{81, 80}, widths)
}

func TestResizeHandler_RespondsToSIGWINCH(t *testing.T) {
	var mu sync.Mutex
	count := 0

	getSize := func() (int, int, error) { return 100, 40, nil }
	resizeFunc := func(height, width uint) error {
		mu.Lock()
		defer mu.Unlock()
		count++
		assert.Contains(t, []uint{40, 41}, height)
		assert.Contains(t, []uint{100, 101}, width)
		return nil
	}

	h := NewResizeHandler(resizeFunc, getSize)
	h.Start()
	defer h.Stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGWINCH))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count >= 3
	}, time.Second, 10*time.Millisecond)
}

func TestResizeHandler_StopIsIdempotent(t *testing.T) {
	h := NewResizeHandler(func(height, width uint) error { return nil }, func() (int, int, error) { return 1, 1, nil })
	h.Start()
	h.Stop()
	assert.NotPanics(t, func() {
		h.Stop()
	})
}

func TestResizeHandler_GetSizeErrorSkipsResize(t *testing.T) {
	called := false
	getSize := func() (int, int, error) { return 0, 0, assert.AnError }
	resizeFunc := func(height, width uint) error {
		called = true
		return nil
	}

	h := NewResizeHandler(resizeFunc, getSize)
	h.Start()
	defer h.Stop()

	time.Sleep(20 * time.Millisecond)
	assert.False(t, called)
}
