package engine

import "fmt"

// ConnectionFailedError reports a generic failure to reach an HTTP/TCP
// engine endpoint.
type ConnectionFailedError struct {
	Message string
	Err     error
}

func (e *ConnectionFailedError) Error() string {
	return fmt.Sprintf(
		"cannot connect to container engine: %s\n  check the engine daemon is running and reachable at the configured endpoint",
		e.Message,
	)
}

func (e *ConnectionFailedError) Unwrap() error {
	return e.Err
}

// HealthCheckTimeoutError reports that a ping exceeded the health-check deadline.
type HealthCheckTimeoutError struct {
	Seconds int
	Err     error
}

func (e *HealthCheckTimeoutError) Error() string {
	return fmt.Sprintf("engine health check timed out after %d seconds", e.Seconds)
}

func (e *HealthCheckTimeoutError) Unwrap() error {
	return e.Err
}

// HealthCheckFailedError reports a protocol-level ping failure.
type HealthCheckFailedError struct {
	Message string
	Err     error
}

func (e *HealthCheckFailedError) Error() string {
	return fmt.Sprintf("engine health check failed: %s", e.Message)
}

func (e *HealthCheckFailedError) Unwrap() error {
	return e.Err
}

// PermissionDeniedError reports that the invoking user lacks permission to
// access a Unix socket or named pipe.
type PermissionDeniedError struct {
	Path string
	Err  error
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf(
		"permission denied accessing engine socket %q\n  add your user to the engine's group, or use the rootless socket (e.g. $XDG_RUNTIME_DIR/podman/podman.sock)",
		e.Path,
	)
}

func (e *PermissionDeniedError) Unwrap() error {
	return e.Err
}

// SocketNotFoundError reports that a Unix socket or named pipe does not exist.
type SocketNotFoundError struct {
	Path string
	Err  error
}

func (e *SocketNotFoundError) Error() string {
	return fmt.Sprintf(
		"engine socket not found at %q\n  start the engine daemon (e.g. 'sudo systemctl start docker', or 'podman system service' for rootless Podman)",
		e.Path,
	)
}

func (e *SocketNotFoundError) Unwrap() error {
	return e.Err
}

// CreateFailedError reports a container-creation failure.
type CreateFailedError struct {
	Message string
	Err     error
}

func (e *CreateFailedError) Error() string {
	return fmt.Sprintf("failed to create container: %s", e.Message)
}

func (e *CreateFailedError) Unwrap() error {
	return e.Err
}

// UploadFailedError reports a credential/archive upload failure.
type UploadFailedError struct {
	Container string
	Message   string
	Err       error
}

func (e *UploadFailedError) Error() string {
	return fmt.Sprintf("failed to upload archive to container %q: %s", e.Container, e.Message)
}

func (e *UploadFailedError) Unwrap() error {
	return e.Err
}

// ExecFailedError reports an exec-session failure not captured by a
// completed ExecResult.
type ExecFailedError struct {
	Container string
	Message   string
	Err       error
}

func (e *ExecFailedError) Error() string {
	return fmt.Sprintf("exec failed in container %q: %s", e.Container, e.Message)
}

func (e *ExecFailedError) Unwrap() error {
	return e.Err
}
