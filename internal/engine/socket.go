package engine

import (
	"runtime"

	"github.com/leynos/podbot/internal/envport"
)

const (
	defaultUnixSocket = "unix:///var/run/docker.sock"
	defaultNamedPipe  = "npipe:////./pipe/docker_engine"
)

// ResolveSocket picks the engine socket endpoint to connect to, given an
// optional config-provided value and the process environment. Precedence
// (first non-empty wins): configSocket, DOCKER_HOST, CONTAINER_HOST,
// PODMAN_HOST, platform default. Empty strings at any stage are treated as
// absent. This function never fails; it only selects.
func ResolveSocket(configSocket string, env envport.Env) string {
	for _, candidate := range []string{
		configSocket,
		env.Getenv("DOCKER_HOST"),
		env.Getenv("CONTAINER_HOST"),
		env.Getenv("PODMAN_HOST"),
	} {
		if candidate != "" {
			return candidate
		}
	}
	return platformDefaultSocket()
}

func platformDefaultSocket() string {
	if runtime.GOOS == "windows" {
		return defaultNamedPipe
	}
	return defaultUnixSocket
}
