package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leynos/podbot/internal/creds"
	"github.com/leynos/podbot/internal/sandbox"
)

func TestDefault_MatchesSpecMandatedValues(t *testing.T) {
	d := Default()

	assert.Equal(t, sandbox.Default(), d.Sandbox)
	assert.Equal(t, creds.Default(), d.Creds)
	assert.Equal(t, AgentClaude, d.Agent.Kind)
	assert.Equal(t, AgentModePodbot, d.Agent.Mode)
	assert.Equal(t, "/work", d.Workspace.BaseDir)
	assert.Nil(t, d.GitHub.AppID)
	assert.Nil(t, d.GitHub.InstallationID)
	assert.Empty(t, d.GitHub.PrivateKeyPath)
}

type fakeSettable struct {
	values map[string]any
}

func newFakeSettable() *fakeSettable {
	return &fakeSettable{values: map[string]any{}}
}

func (f *fakeSettable) SetDefault(key string, value any) {
	f.values[key] = value
}

func TestApplyDefaults_SeedsExpectedKeys(t *testing.T) {
	f := newFakeSettable()
	applyDefaults(f)

	assert.Equal(t, false, f.values["sandbox.privileged"])
	assert.Equal(t, true, f.values["sandbox.mount_dev_fuse"])
	assert.Equal(t, string(sandbox.SELinuxDisableForContainer), f.values["sandbox.selinux_label_mode"])
	assert.Equal(t, string(AgentClaude), f.values["agent.kind"])
	assert.Equal(t, string(AgentModePodbot), f.values["agent.mode"])
	assert.Equal(t, "/work", f.values["workspace.base_dir"])
	assert.Equal(t, true, f.values["creds.copy_claude"])
	assert.Equal(t, true, f.values["creds.copy_codex"])
}
