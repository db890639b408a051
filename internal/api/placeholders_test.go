package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leynos/podbot/internal/config"
	"github.com/leynos/podbot/internal/coreerr"
)

func TestRunAgent_ReturnsSuccess(t *testing.T) {
	cfg := config.Default()
	cfg.Image = "ghcr.io/example/agent:latest"

	outcome, err := RunAgent(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, outcome.IsSuccess())
}

func TestRunAgent_MissingImageFailsBeforeAnyEngineCall(t *testing.T) {
	_, err := RunAgent(context.Background(), config.Default())
	require.Error(t, err)

	var want *coreerr.MissingRequiredError
	require.ErrorAs(t, err, &want)
	assert.Equal(t, "image", want.Field)
}

func TestStopContainer_ReturnsSuccess(t *testing.T) {
	outcome, err := StopContainer(context.Background(), "container-1")
	require.NoError(t, err)
	assert.True(t, outcome.IsSuccess())
}

func TestListContainers_ReturnsSuccess(t *testing.T) {
	outcome, err := ListContainers(context.Background())
	require.NoError(t, err)
	assert.True(t, outcome.IsSuccess())
}

func TestRunTokenDaemon_ReturnsSuccess(t *testing.T) {
	outcome, err := RunTokenDaemon(context.Background(), "container-1")
	require.NoError(t, err)
	assert.True(t, outcome.IsSuccess())
}
