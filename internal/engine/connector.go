// Package engine resolves the container engine socket, constructs an
// engine client from it, and exposes health-check, create, upload, and
// low-level exec primitives on top of the Docker Engine API client.
package engine

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"github.com/leynos/podbot/internal/sandbox"
	"github.com/leynos/podbot/pkg/logger"
)

// healthCheckTimeout bounds how long a ping may take before it is reported
// as a timeout rather than a protocol failure.
const healthCheckTimeout = 10 * time.Second

// Connector wraps an engine API client resolved from a socket endpoint. It
// is shared by reference across operations; the underlying client is
// internally synchronized and safe for concurrent use.
type Connector struct {
	cli    client.APIClient
	socket string
}

// Connect dispatches on the socket endpoint's scheme and returns a
// Connector wrapping a client bound to it. For unix:// and npipe://
// endpoints the client is bound to the local socket/pipe; for http://,
// https://, and tcp:// (rewritten to http://) it is an HTTP client.
// Connection is lazy for HTTP-compatible endpoints: client construction
// succeeds even when no daemon is reachable, and the first API call
// surfaces the failure.
func Connect(socket string) (*Connector, error) {
	host := socket
	switch {
	case strings.HasPrefix(host, "tcp://"):
		host = "http://" + strings.TrimPrefix(host, "tcp://")
	case !strings.Contains(host, "://"):
		host = "unix://" + host
	}

	cli, err := client.NewClientWithOpts(
		client.WithHost(host),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, classifyConnectionError(err, socket)
	}

	return &Connector{cli: cli, socket: socket}, nil
}

// NewFromExisting wraps an already-constructed API client, for tests and
// for callers that need a non-default transport.
func NewFromExisting(cli client.APIClient, socket string) *Connector {
	return &Connector{cli: cli, socket: socket}
}

// Close releases the underlying client's resources.
func (c *Connector) Close() error {
	return c.cli.Close()
}

// HealthCheck pings the engine, waiting at most 10 seconds.
func (c *Connector) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	_, err := c.cli.Ping(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &HealthCheckTimeoutError{Seconds: int(healthCheckTimeout.Seconds()), Err: ctx.Err()}
	}
	if classified := classifySocketError(err, c.socket); classified != nil {
		return classified
	}
	return &HealthCheckFailedError{Message: err.Error(), Err: err}
}

// CreateContainer builds the host config via the security mapper, calls
// the engine's create API, and returns the new container's ID.
func (c *Connector) CreateContainer(ctx context.Context, req CreateContainerRequest) (string, error) {
	hostConfig := sandbox.BuildHostConfig(req.Security)

	cfg := &container.Config{
		Image: req.Image,
		Cmd:   req.Cmd,
		Env:   req.Env,
		Tty:   false,
	}

	logger.Debug().Str("image", req.Image).Str("name", req.Name).Msg("creating container")

	resp, err := c.cli.ContainerCreate(ctx, cfg, &hostConfig, nil, nil, req.Name)
	if err != nil {
		return "", &CreateFailedError{Message: err.Error(), Err: err}
	}
	return resp.ID, nil
}

// UploadToContainer uploads a tar archive to an absolute directory inside
// the container.
func (c *Connector) UploadToContainer(ctx context.Context, containerID string, tarBytes io.Reader, targetPath string) error {
	err := c.cli.CopyToContainer(ctx, containerID, targetPath, tarBytes, container.CopyToContainerOptions{})
	if err != nil {
		return &UploadFailedError{Container: containerID, Message: err.Error(), Err: err}
	}
	return nil
}

// CreateExec creates an exec instance in the given container.
func (c *Connector) CreateExec(ctx context.Context, containerID string, cmd, env []string, tty bool) (string, error) {
	resp, err := c.cli.ContainerExecCreate(ctx, containerID, container.ExecOptions{
		Cmd:          cmd,
		Env:          env,
		Tty:          tty,
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return "", &ExecFailedError{Container: containerID, Message: err.Error(), Err: err}
	}
	return resp.ID, nil
}

// StartExecAttached starts an exec instance and returns the hijacked
// duplex stream connection.
func (c *Connector) StartExecAttached(ctx context.Context, execID string, tty bool) (types.HijackedResponse, error) {
	resp, err := c.cli.ContainerExecAttach(ctx, execID, container.ExecStartOptions{Tty: tty})
	if err != nil {
		return types.HijackedResponse{}, &ExecFailedError{Container: execID, Message: err.Error(), Err: err}
	}
	return resp, nil
}

// StartExecDetached starts an exec instance without attaching streams.
func (c *Connector) StartExecDetached(ctx context.Context, execID string) error {
	if err := c.cli.ContainerExecStart(ctx, execID, container.ExecStartOptions{}); err != nil {
		return &ExecFailedError{Container: execID, Message: err.Error(), Err: err}
	}
	return nil
}

// InspectExec reports an exec instance's running state and exit code.
func (c *Connector) InspectExec(ctx context.Context, execID string) (container.ExecInspect, error) {
	resp, err := c.cli.ContainerExecInspect(ctx, execID)
	if err != nil {
		return container.ExecInspect{}, &ExecFailedError{Container: execID, Message: err.Error(), Err: err}
	}
	return resp, nil
}

// ResizeExec propagates a terminal resize to a running exec instance.
func (c *Connector) ResizeExec(ctx context.Context, execID string, height, width uint) error {
	return c.cli.ContainerExecResize(ctx, execID, container.ResizeOptions{Height: height, Width: width})
}

// classifyConnectionError maps a client-construction failure into the
// semantic error kinds, for the socket that was attempted.
func classifyConnectionError(err error, socket string) error {
	if classified := classifySocketError(err, socket); classified != nil {
		return classified
	}
	return &ConnectionFailedError{Message: err.Error(), Err: err}
}

// classifySocketError walks the underlying I/O error chain for unix:// and
// npipe:// endpoints. HTTP/TCP endpoints always classify as generic
// connection failures and this returns nil for them, leaving the caller to
// build a ConnectionFailedError.
func classifySocketError(err error, socket string) error {
	if !isLocalSocketScheme(socket) {
		return nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return &PermissionDeniedError{Path: socket, Err: err}
	}
	if errors.Is(err, fs.ErrNotExist) || errdefs.IsNotFound(err) {
		return &SocketNotFoundError{Path: socket, Err: err}
	}
	return nil
}

func isLocalSocketScheme(socket string) bool {
	return strings.HasPrefix(socket, "unix://") ||
		strings.HasPrefix(socket, "npipe://") ||
		!strings.Contains(socket, "://")
}
