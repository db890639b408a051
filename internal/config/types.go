// Package config discovers the configuration file, merges the defaults,
// file, environment, and CLI layers with fixed precedence, validates typed
// environment overrides fail-fast, and exposes a single resolved
// configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/leynos/podbot/internal/coreerr"
	"github.com/leynos/podbot/internal/creds"
	"github.com/leynos/podbot/internal/sandbox"
)

// AppConfig is the fully resolved configuration, owned by the caller once
// Load returns.
type AppConfig struct {
	EngineSocket string        `mapstructure:"engine_socket"`
	Image        string        `mapstructure:"image"`
	GitHub       GitHubConfig  `mapstructure:"github"`
	Sandbox      sandbox.Config `mapstructure:"sandbox"`
	Agent        AgentConfig   `mapstructure:"agent"`
	Workspace    WorkspaceConfig `mapstructure:"workspace"`
	Creds        creds.Config  `mapstructure:"creds"`
}

// GitHubConfig holds GitHub App credential locators. It is not required
// for commands that never access GitHub.
type GitHubConfig struct {
	AppID          *uint64 `mapstructure:"app_id"`
	InstallationID *uint64 `mapstructure:"installation_id"`
	PrivateKeyPath string  `mapstructure:"private_key_path"`
}

// IsConfigured reports whether all three GitHub fields are present.
func (g GitHubConfig) IsConfigured() bool {
	return g.AppID != nil && g.InstallationID != nil && strings.TrimSpace(g.PrivateKeyPath) != ""
}

// Validate fails with a MissingRequiredError listing every absent field
// when the configuration is not fully configured.
func (g GitHubConfig) Validate() error {
	var missing []string
	if g.AppID == nil {
		missing = append(missing, "app_id")
	}
	if g.InstallationID == nil {
		missing = append(missing, "installation_id")
	}
	if strings.TrimSpace(g.PrivateKeyPath) == "" {
		missing = append(missing, "private_key_path")
	}
	if len(missing) == 0 {
		return nil
	}
	return &coreerr.MissingRequiredError{Field: fmt.Sprintf("github.{%s}", strings.Join(missing, ", "))}
}

// AgentKind selects which coding agent runs inside the sandbox.
type AgentKind string

const (
	AgentClaude AgentKind = "claude"
	AgentCodex  AgentKind = "codex"
)

// AgentMode selects the agent's operating mode.
type AgentMode string

// AgentModePodbot is currently the only supported agent mode.
const AgentModePodbot AgentMode = "podbot"

// AgentConfig selects the coding agent and its mode.
type AgentConfig struct {
	Kind AgentKind `mapstructure:"kind"`
	Mode AgentMode `mapstructure:"mode"`
}

// WorkspaceConfig locates the in-container working directory.
type WorkspaceConfig struct {
	BaseDir string `mapstructure:"base_dir"`
}
