package api

import (
	"context"

	"github.com/leynos/podbot/internal/config"
)

// RunAgent starts an agent container per the resolved configuration.
// Image selection runs for real: a missing or whitespace-only cfg.Image
// fails fast here, before any engine call is attempted. Container
// lifecycle integration beyond that is pending; once image selection
// succeeds this placeholder performs no engine call and always succeeds,
// giving the adapter a stable call site today.
func RunAgent(ctx context.Context, cfg config.AppConfig) (CommandOutcome, error) {
	if _, err := config.FromAppConfig(cfg, "", nil, nil); err != nil {
		return CommandOutcome{}, err
	}
	return Success(), nil
}

// StopContainer stops the named container. Lifecycle integration is
// pending; this placeholder performs no engine call and always succeeds.
func StopContainer(ctx context.Context, containerID string) (CommandOutcome, error) {
	return Success(), nil
}

// ListContainers lists podbot-managed containers. Lifecycle integration is
// pending; this placeholder performs no engine call and always succeeds.
func ListContainers(ctx context.Context) (CommandOutcome, error) {
	return Success(), nil
}

// RunTokenDaemon starts the credential-refresh token daemon against the
// named container. Lifecycle integration is pending; this placeholder
// performs no engine call and always succeeds.
func RunTokenDaemon(ctx context.Context, containerID string) (CommandOutcome, error) {
	return Success(), nil
}
