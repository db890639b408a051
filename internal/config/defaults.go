package config

import (
	"github.com/leynos/podbot/internal/creds"
	"github.com/leynos/podbot/internal/sandbox"
)

// Default returns the spec-mandated default configuration. GitHub fields
// are left absent — GitHub is not required for commands that never use it.
func Default() AppConfig {
	return AppConfig{
		Sandbox: sandbox.Default(),
		Agent: AgentConfig{
			Kind: AgentClaude,
			Mode: AgentModePodbot,
		},
		Workspace: WorkspaceConfig{
			BaseDir: "/work",
		},
		Creds: creds.Default(),
	}
}

// applyDefaults seeds a viper instance with the default configuration so
// that absent fields in the file/env/CLI layers inherit them.
func applyDefaults(v settable) {
	d := Default()
	v.SetDefault("sandbox.privileged", d.Sandbox.Privileged)
	v.SetDefault("sandbox.mount_dev_fuse", d.Sandbox.MountDevFuse)
	v.SetDefault("sandbox.selinux_label_mode", string(d.Sandbox.SELinuxLabelMode))
	v.SetDefault("agent.kind", string(d.Agent.Kind))
	v.SetDefault("agent.mode", string(d.Agent.Mode))
	v.SetDefault("workspace.base_dir", d.Workspace.BaseDir)
	v.SetDefault("creds.copy_claude", d.Creds.CopyClaude)
	v.SetDefault("creds.copy_codex", d.Creds.CopyCodex)
}

// settable is the narrow slice of *viper.Viper used by applyDefaults,
// kept as an interface so defaults can be unit-tested without viper.
type settable interface {
	SetDefault(key string, value any)
}
