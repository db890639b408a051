package config

import (
	"github.com/leynos/podbot/internal/engine"
	"github.com/leynos/podbot/internal/sandbox"
)

// FromAppConfig is the sole image-selection path from resolved configuration
// into a CreateContainerRequest: it reads cfg.Image, trims it, and fails
// with MissingRequiredError{Field: "image"} when absent or whitespace-only
// (delegated to engine.NewCreateContainerRequest, which performs the
// trim-and-check). No other call site may build a CreateContainerRequest
// from a raw image string derived from resolved configuration.
func FromAppConfig(cfg AppConfig, name string, cmd, env []string) (engine.CreateContainerRequest, error) {
	security := sandbox.FromConfig(cfg.Sandbox)
	return engine.NewCreateContainerRequest(cfg.Image, name, cmd, env, security)
}
