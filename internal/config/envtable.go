package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leynos/podbot/internal/coreerr"
	"github.com/leynos/podbot/internal/envport"
	"github.com/leynos/podbot/internal/sandbox"
)

// applyEnvOverrides parses the exhaustive environment variable table and
// overrides the corresponding fields on cfg. Any unparseable typed value
// fails fast rather than silently reverting to the prior layer's value.
func applyEnvOverrides(cfg *AppConfig, env envport.Env) error {
	if v, ok := env.LookupEnv("PODBOT_ENGINE_SOCKET"); ok {
		cfg.EngineSocket = v
	}
	if v, ok := env.LookupEnv("PODBOT_IMAGE"); ok {
		cfg.Image = v
	}
	if v, ok := env.LookupEnv("PODBOT_GITHUB_APP_ID"); ok {
		parsed, err := parseUint64("PODBOT_GITHUB_APP_ID", v)
		if err != nil {
			return err
		}
		cfg.GitHub.AppID = &parsed
	}
	if v, ok := env.LookupEnv("PODBOT_GITHUB_INSTALLATION_ID"); ok {
		parsed, err := parseUint64("PODBOT_GITHUB_INSTALLATION_ID", v)
		if err != nil {
			return err
		}
		cfg.GitHub.InstallationID = &parsed
	}
	if v, ok := env.LookupEnv("PODBOT_GITHUB_PRIVATE_KEY_PATH"); ok {
		cfg.GitHub.PrivateKeyPath = v
	}
	if v, ok := env.LookupEnv("PODBOT_SANDBOX_PRIVILEGED"); ok {
		parsed, err := parseBool("PODBOT_SANDBOX_PRIVILEGED", v)
		if err != nil {
			return err
		}
		cfg.Sandbox.Privileged = parsed
	}
	if v, ok := env.LookupEnv("PODBOT_SANDBOX_MOUNT_DEV_FUSE"); ok {
		parsed, err := parseBool("PODBOT_SANDBOX_MOUNT_DEV_FUSE", v)
		if err != nil {
			return err
		}
		cfg.Sandbox.MountDevFuse = parsed
	}
	if v, ok := env.LookupEnv("PODBOT_SANDBOX_SELINUX_LABEL_MODE"); ok {
		parsed, err := parseSELinuxLabelMode(v)
		if err != nil {
			return err
		}
		cfg.Sandbox.SELinuxLabelMode = parsed
	}
	if v, ok := env.LookupEnv("PODBOT_AGENT_KIND"); ok {
		parsed, err := parseAgentKind(v)
		if err != nil {
			return err
		}
		cfg.Agent.Kind = parsed
	}
	if v, ok := env.LookupEnv("PODBOT_AGENT_MODE"); ok {
		parsed, err := parseAgentMode(v)
		if err != nil {
			return err
		}
		cfg.Agent.Mode = parsed
	}
	if v, ok := env.LookupEnv("PODBOT_WORKSPACE_BASE_DIR"); ok {
		cfg.Workspace.BaseDir = v
	}
	if v, ok := env.LookupEnv("PODBOT_CREDS_COPY_CLAUDE"); ok {
		parsed, err := parseBool("PODBOT_CREDS_COPY_CLAUDE", v)
		if err != nil {
			return err
		}
		cfg.Creds.CopyClaude = parsed
	}
	if v, ok := env.LookupEnv("PODBOT_CREDS_COPY_CODEX"); ok {
		parsed, err := parseBool("PODBOT_CREDS_COPY_CODEX", v)
		if err != nil {
			return err
		}
		cfg.Creds.CopyCodex = parsed
	}
	return nil
}

// parseBool accepts true/false/1/0/yes/no, case-insensitive; anything else
// is an error.
func parseBool(envVar, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, &coreerr.OrthoConfigError{
			Message: fmt.Sprintf("%s: invalid boolean value %q (want true/false/1/0/yes/no)", envVar, raw),
		}
	}
}

func parseUint64(envVar, raw string) (uint64, error) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &coreerr.OrthoConfigError{Message: fmt.Sprintf("%s: invalid unsigned integer %q", envVar, raw), Err: err}
	}
	return parsed, nil
}

func parseSELinuxLabelMode(raw string) (sandbox.SELinuxLabelMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "keep_default":
		return sandbox.SELinuxKeepDefault, nil
	case "disable_for_container":
		return sandbox.SELinuxDisableForContainer, nil
	default:
		return "", &coreerr.OrthoConfigError{
			Message: fmt.Sprintf("PODBOT_SANDBOX_SELINUX_LABEL_MODE: invalid value %q (want keep_default/disable_for_container)", raw),
		}
	}
}

func parseAgentKind(raw string) (AgentKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "claude":
		return AgentClaude, nil
	case "codex":
		return AgentCodex, nil
	default:
		return "", &coreerr.OrthoConfigError{
			Message: fmt.Sprintf("PODBOT_AGENT_KIND: invalid value %q (want claude/codex)", raw),
		}
	}
}

func parseAgentMode(raw string) (AgentMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "podbot":
		return AgentModePodbot, nil
	default:
		return "", &coreerr.OrthoConfigError{
			Message: fmt.Sprintf("PODBOT_AGENT_MODE: invalid value %q (want podbot)", raw),
		}
	}
}
