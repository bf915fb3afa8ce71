package main

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func TestMergeWritesHeadersAndSpacing(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeInput(t, "a.txt", "alpha")
	env.writeInput(t, "b.txt", "beta")

	out, err := runCLI(t, env, "merge", "-o", "combo.txt", "a.txt", "b.txt")
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	requireContains(t, out, "Merged 2 file(s) into combo.txt")

	merged, err := os.ReadFile(filepath.Join(env.outputDir, "combo.txt"))
	if err != nil {
		t.Fatalf("read merged: %v", err)
	}
	want := "--- a.txt ---\nalpha\n\n--- b.txt ---\nbeta\n"
	if string(merged) != want {
		t.Fatalf("merged = %q, want %q", merged, want)
	}
}

func TestMergeMissingSource(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeInput(t, "a.txt", "alpha")

	if _, err := runCLI(t, env, "merge", "a.txt", "ghost.txt"); err == nil {
		t.Fatal("expected error for missing source file")
	}
}

func TestBackupCreatesTimestampedCopy(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeInput(t, "keep.txt", "precious")

	out, err := runCLI(t, env, "backup", "keep.txt")
	if err != nil {
		t.Fatalf("backup: %v", err)
	}

	pattern := regexp.MustCompile(`keep_\d{8}_\d{6}\.bak`)
	name := pattern.FindString(out)
	if name == "" {
		t.Fatalf("no backup name in output:\n%s", out)
	}
	content, err := os.ReadFile(filepath.Join(env.outputDir, name))
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(content) != "precious" {
		t.Fatalf("backup content = %q, want %q", content, "precious")
	}
}
