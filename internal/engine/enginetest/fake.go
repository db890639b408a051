// Package enginetest provides a deterministic engine API client double.
// It embeds the real client.APIClient interface (unset) and overrides only
// the methods exercised by the connector, so tests can stub exactly the
// calls they need without implementing the entire Docker API surface.
package enginetest

import (
	"context"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// Fake is a stub client.APIClient. Any method not overridden via the
// function fields below panics if called, surfacing unexpected API usage
// in a test immediately rather than silently returning zero values.
type Fake struct {
	client.APIClient

	PingFunc            func(ctx context.Context) (types.Ping, error)
	ContainerCreateFunc func(ctx context.Context, cfg *container.Config, hostCfg *container.HostConfig, name string) (container.CreateResponse, error)
	CopyToContainerFunc func(ctx context.Context, containerID, dstPath string, content io.Reader) error
	ExecCreateFunc      func(ctx context.Context, containerID string, opts container.ExecOptions) (types.IDResponse, error)
	ExecAttachFunc      func(ctx context.Context, execID string, opts container.ExecStartOptions) (types.HijackedResponse, error)
	ExecStartFunc       func(ctx context.Context, execID string, opts container.ExecStartOptions) error
	ExecInspectFunc     func(ctx context.Context, execID string) (container.ExecInspect, error)
	ExecResizeFunc      func(ctx context.Context, execID string, opts container.ResizeOptions) error
}

func (f *Fake) Ping(ctx context.Context) (types.Ping, error) {
	return f.PingFunc(ctx)
}

func (f *Fake) ContainerCreate(
	ctx context.Context,
	cfg *container.Config,
	hostCfg *container.HostConfig,
	_ *container.NetworkingConfig,
	_ interface{},
	name string,
) (container.CreateResponse, error) {
	return f.ContainerCreateFunc(ctx, cfg, hostCfg, name)
}

func (f *Fake) CopyToContainer(
	ctx context.Context,
	containerID, dstPath string,
	content io.Reader,
	_ container.CopyToContainerOptions,
) error {
	return f.CopyToContainerFunc(ctx, containerID, dstPath, content)
}

func (f *Fake) ContainerExecCreate(ctx context.Context, containerID string, opts container.ExecOptions) (types.IDResponse, error) {
	return f.ExecCreateFunc(ctx, containerID, opts)
}

func (f *Fake) ContainerExecAttach(ctx context.Context, execID string, opts container.ExecStartOptions) (types.HijackedResponse, error) {
	return f.ExecAttachFunc(ctx, execID, opts)
}

func (f *Fake) ContainerExecStart(ctx context.Context, execID string, opts container.ExecStartOptions) error {
	return f.ExecStartFunc(ctx, execID, opts)
}

func (f *Fake) ContainerExecInspect(ctx context.Context, execID string) (container.ExecInspect, error) {
	return f.ExecInspectFunc(ctx, execID)
}

func (f *Fake) ContainerExecResize(ctx context.Context, execID string, opts container.ResizeOptions) error {
	return f.ExecResizeFunc(ctx, execID, opts)
}

func (f *Fake) Close() error { return nil }
