package engine

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySocketError_PermissionDenied(t *testing.T) {
	err := fmt.Errorf("dial unix /var/run/docker.sock: %w", fs.ErrPermission)
	classified := classifySocketError(err, "unix:///var/run/docker.sock")

	var want *PermissionDeniedError
	assert.ErrorAs(t, classified, &want)
	assert.Equal(t, "unix:///var/run/docker.sock", want.Path)
	assert.ErrorIs(t, classified, fs.ErrPermission, "the fs.ErrPermission cause must survive through Unwrap")
}

func TestClassifySocketError_NotFound(t *testing.T) {
	err := fmt.Errorf("dial unix /var/run/docker.sock: %w", fs.ErrNotExist)
	classified := classifySocketError(err, "unix:///var/run/docker.sock")

	var want *SocketNotFoundError
	assert.ErrorAs(t, classified, &want)
	assert.ErrorIs(t, classified, fs.ErrNotExist, "the fs.ErrNotExist cause must survive through Unwrap")
}

func TestClassifySocketError_IgnoresHTTPEndpoints(t *testing.T) {
	err := fmt.Errorf("dial tcp: %w", fs.ErrNotExist)
	classified := classifySocketError(err, "tcp://example:2375")
	assert.Nil(t, classified)
}

func TestClassifyConnectionError_FallsBackToGeneric(t *testing.T) {
	err := classifyConnectionError(fmt.Errorf("boom"), "https://example:2375")

	var want *ConnectionFailedError
	assert.ErrorAs(t, err, &want)
}
