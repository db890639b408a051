package creds

import (
	"os"
	"path/filepath"

	"github.com/leynos/podbot/internal/envport"
)

// SourceTarget pairs a resolved host source directory with its in-container
// destination, rooted at /root.
type SourceTarget struct {
	Source string
	Target string
}

// Plan is the resolved set of directories to include in the credential
// archive.
type Plan struct {
	Pairs []SourceTarget
}

// Empty reports whether the plan has no entries, in which case uploading
// is a no-op success.
func (p Plan) Empty() bool {
	return len(p.Pairs) == 0
}

// candidate names the host directory under HOME and its in-container
// target directory name, gated by a Config toggle.
type candidate struct {
	enabled bool
	name    string
}

// BuildPlan pairs each enabled source directory under HOME with its
// in-container target. A selected source that does not exist, is not a
// directory, or whose symlink cannot be resolved is skipped without error —
// an unresolvable symlink is treated the same as a missing source.
func BuildPlan(cfg Config, env envport.Env) (Plan, error) {
	home, err := env.Home()
	if err != nil {
		return Plan{}, err
	}

	candidates := []candidate{
		{cfg.CopyClaude, ".claude"},
		{cfg.CopyCodex, ".codex"},
	}

	var pairs []SourceTarget
	for _, c := range candidates {
		if !c.enabled {
			continue
		}
		src := filepath.Join(home, c.name)
		resolved, err := filepath.EvalSymlinks(src)
		if err != nil {
			continue
		}
		info, err := os.Stat(resolved)
		if err != nil || !info.IsDir() {
			continue
		}
		pairs = append(pairs, SourceTarget{
			Source: resolved,
			Target: "/root/" + c.name,
		})
	}

	return Plan{Pairs: pairs}, nil
}
