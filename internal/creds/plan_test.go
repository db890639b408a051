package creds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leynos/podbot/internal/envport/envporttest"
)

func TestBuildPlan_BothEnabled(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, ".claude"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(home, ".codex"), 0o755))

	env := envporttest.New()
	env.HomeDir = home

	plan, err := BuildPlan(Config{CopyClaude: true, CopyCodex: true}, env)
	require.NoError(t, err)
	require.Len(t, plan.Pairs, 2)
	assert.False(t, plan.Empty())
}

func TestBuildPlan_MissingSourceSkipped(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, ".claude"), 0o755))
	// .codex intentionally absent

	env := envporttest.New()
	env.HomeDir = home

	plan, err := BuildPlan(Config{CopyClaude: true, CopyCodex: true}, env)
	require.NoError(t, err)
	require.Len(t, plan.Pairs, 1)
	assert.Equal(t, "/root/.claude", plan.Pairs[0].Target)
}

func TestBuildPlan_NoneSelectedIsEmpty(t *testing.T) {
	home := t.TempDir()
	env := envporttest.New()
	env.HomeDir = home

	plan, err := BuildPlan(Config{}, env)
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestBuildPlan_FileInsteadOfDirSkipped(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".claude"), []byte("not a dir"), 0o644))

	env := envporttest.New()
	env.HomeDir = home

	plan, err := BuildPlan(Config{CopyClaude: true}, env)
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestBuildPlan_UnresolvableSymlinkTreatedAsMissing(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(home, "nonexistent-target"), filepath.Join(home, ".claude")))

	env := envporttest.New()
	env.HomeDir = home

	plan, err := BuildPlan(Config{CopyClaude: true}, env)
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestBuildPlan_PropagatesHomeError(t *testing.T) {
	env := envporttest.New()
	env.HomeErr = assert.AnError

	_, err := BuildPlan(Config{CopyClaude: true}, env)
	assert.Error(t, err)
}
