// Package configtest provides small helpers for writing throwaway TOML
// fixtures in config package tests.
package configtest

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTOML writes content to dir/name and returns the full path.
func WriteTOML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}
