package execorch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"net"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConnector struct {
	createExecErr  error
	startErr       error
	inspectCalls   int32
	runningForN    int32
	exitCode       int
	resizeCalls    int32
	hijack         types.HijackedResponse
	startAttachErr error
}

func (f *fakeConnector) CreateExec(ctx context.Context, containerID string, cmd, env []string, tty bool) (string, error) {
	if f.createExecErr != nil {
		return "", f.createExecErr
	}
	return "exec-1", nil
}

func (f *fakeConnector) StartExecAttached(ctx context.Context, execID string, tty bool) (types.HijackedResponse, error) {
	if f.startAttachErr != nil {
		return types.HijackedResponse{}, f.startAttachErr
	}
	return f.hijack, nil
}

func (f *fakeConnector) StartExecDetached(ctx context.Context, execID string) error {
	return f.startErr
}

func (f *fakeConnector) InspectExec(ctx context.Context, execID string) (container.ExecInspect, error) {
	n := atomic.AddInt32(&f.inspectCalls, 1)
	if n <= f.runningForN {
		return container.ExecInspect{Running: true}, nil
	}
	return container.ExecInspect{Running: false, ExitCode: f.exitCode}, nil
}

func (f *fakeConnector) ResizeExec(ctx context.Context, execID string, height, width uint) error {
	atomic.AddInt32(&f.resizeCalls, 1)
	return nil
}

func TestRun_RejectsEmptyCommand(t *testing.T) {
	r := NewRunner(&fakeConnector{}, nil, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	_, err := r.Run(context.Background(), Request{ContainerID: "c1", Mode: Detached})
	require.Error(t, err)
}

func TestRun_DetachedPollsUntilExitCode(t *testing.T) {
	f := &fakeConnector{runningForN: 2, exitCode: 7}
	r := NewRunner(f, nil, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	result, err := r.Run(context.Background(), Request{
		ContainerID: "c1",
		Command:     []string{"echo", "hi"},
		Mode:        Detached,
	})
	require.NoError(t, err)
	assert.Equal(t, "exec-1", result.ExecID)
	assert.Equal(t, int64(7), result.ExitCode)
}

func TestRun_AttachedNonTTYDemuxesStdoutStderr(t *testing.T) {
	remote, local := net.Pipe()
	hijack := types.HijackedResponse{Conn: local, Reader: bufio.NewReader(local)}

	f := &fakeConnector{hijack: hijack, exitCode: 0}

	var stdout, stderr bytes.Buffer
	r := NewRunner(f, nil, strings.NewReader(""), &stdout, &stderr)

	go func() {
		writeStdcopyFrame(remote, 1, []byte("out-line\n"))
		writeStdcopyFrame(remote, 2, []byte("err-line\n"))
		remote.Close()
	}()

	result, err := r.Run(context.Background(), Request{
		ContainerID: "c1",
		Command:     []string{"sh", "-c", "echo"},
		Mode:        Attached,
		TTY:         false,
	})
	require.NoError(t, err)
	assert.Equal(t, "exec-1", result.ExecID)
	assert.Equal(t, "out-line\n", stdout.String())
	assert.Equal(t, "err-line\n", stderr.String())
}

func TestRun_AttachedStreamFailurePropagates(t *testing.T) {
	f := &fakeConnector{startAttachErr: assert.AnError}
	r := NewRunner(f, nil, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	_, err := r.Run(context.Background(), Request{
		ContainerID: "c1",
		Command:     []string{"sh"},
		Mode:        Attached,
	})
	require.Error(t, err)
}

func TestRun_ContextCancelledDuringPollReturnsFailure(t *testing.T) {
	f := &fakeConnector{runningForN: 1000}
	r := NewRunner(f, nil, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := r.Run(ctx, Request{
		ContainerID: "c1",
		Command:     []string{"sleep", "10"},
		Mode:        Detached,
	})
	require.Error(t, err)
}

func writeStdcopyFrame(w interface{ Write([]byte) (int, error) }, stream byte, payload []byte) {
	header := make([]byte, 8)
	header[0] = stream
	binary.BigEndian.PutUint32(header[4:], uint32(len(payload)))
	_, _ = w.Write(header)
	_, _ = w.Write(payload)
}
