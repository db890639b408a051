package engine

import (
	"strings"

	"github.com/leynos/podbot/internal/coreerr"
	"github.com/leynos/podbot/internal/sandbox"
)

// CreateContainerRequest combines a resolved image reference with optional
// name/command/environment overrides and security options, ready for the
// Engine Connector to create a container from. It is validated once, at
// construction, and consumed by value thereafter.
type CreateContainerRequest struct {
	Image    string
	Name     string
	Cmd      []string
	Env      []string
	Security sandbox.SecurityOptions
}

// NewCreateContainerRequest validates and builds a CreateContainerRequest.
// The image is required and is trimmed of surrounding whitespace before the
// non-emptiness check. This is the only place that performs that check;
// config.FromAppConfig is the only caller that may derive image from
// resolved configuration, and it does so by calling straight through to
// this constructor, never by fabricating a request another way.
func NewCreateContainerRequest(
	image, name string,
	cmd, env []string,
	security sandbox.SecurityOptions,
) (CreateContainerRequest, error) {
	trimmed := strings.TrimSpace(image)
	if trimmed == "" {
		return CreateContainerRequest{}, &coreerr.MissingRequiredError{Field: "image"}
	}
	return CreateContainerRequest{
		Image:    trimmed,
		Name:     name,
		Cmd:      cmd,
		Env:      env,
		Security: security,
	}, nil
}
