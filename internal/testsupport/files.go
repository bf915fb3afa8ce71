package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"textlab/internal/config"
)

// WriteInput places a file in the configured input directory.
func WriteInput(t testing.TB, cfg *config.Config, name, content string) string {
	t.Helper()

	path := filepath.Join(cfg.Paths.InputDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create input dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input file %s: %v", name, err)
	}
	return path
}
