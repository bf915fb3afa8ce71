package workspace_test

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"textlab/internal/services"
	"textlab/internal/testsupport"
	"textlab/internal/workspace"
)

func newWorkspace(t *testing.T, opts ...workspace.Option) *workspace.Workspace {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	ws, err := workspace.New(cfg, nil, opts...)
	if err != nil {
		t.Fatalf("workspace.New failed: %v", err)
	}
	return ws
}

func TestWriteThenRead(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSharedWorkspaceDir())
	ws, err := workspace.New(cfg, nil)
	if err != nil {
		t.Fatalf("workspace.New failed: %v", err)
	}

	if err := ws.WriteFile("a.txt", "hello"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	content, err := ws.ReadFile("a.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if content != "hello" {
		t.Fatalf("content = %q, want %q", content, "hello")
	}
}

func TestReadMissingFile(t *testing.T) {
	ws := newWorkspace(t)
	_, err := ws.ReadFile("missing.txt")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.txt") {
		t.Fatalf("error should name the file: %q", err)
	}
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	ws := newWorkspace(t)
	if err := ws.WriteFile(filepath.Join("nested", "deep", "b.txt"), "x"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(ws.OutputDir(), "nested", "deep", "b.txt"))
	if err != nil || string(data) != "x" {
		t.Fatalf("nested file missing: %v", err)
	}
}

func TestWriteOverwritesExisting(t *testing.T) {
	ws := newWorkspace(t)
	if err := ws.WriteFile("c.txt", "first"); err != nil {
		t.Fatal(err)
	}
	if err := ws.WriteFile("c.txt", "second"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(ws.OutputDir(), "c.txt"))
	if err != nil || string(data) != "second" {
		t.Fatalf("expected overwrite, got %q (%v)", data, err)
	}
}

func TestMergeFilesFormat(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSharedWorkspaceDir())
	ws, err := workspace.New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	testsupport.WriteInput(t, cfg, "a.txt", "alpha")
	testsupport.WriteInput(t, cfg, "b.txt", "beta")

	if err := ws.MergeFiles([]string{"a.txt", "b.txt"}, "m.txt"); err != nil {
		t.Fatalf("MergeFiles failed: %v", err)
	}

	merged, err := ws.ReadFile("m.txt")
	if err != nil {
		t.Fatalf("ReadFile of merge output failed: %v", err)
	}

	want := "--- a.txt ---\nalpha\n\n--- b.txt ---\nbeta\n"
	if merged != want {
		t.Fatalf("merged = %q, want %q", merged, want)
	}
	if strings.Index(merged, "--- a.txt ---") > strings.Index(merged, "--- b.txt ---") {
		t.Fatal("sections out of order")
	}
}

func TestMergeFilesMissingInput(t *testing.T) {
	ws := newWorkspace(t)
	err := ws.MergeFiles([]string{"absent.txt"}, "m.txt")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMergeFilesRequiresInputs(t *testing.T) {
	ws := newWorkspace(t)
	if err := ws.MergeFiles(nil, "m.txt"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestBackupFile(t *testing.T) {
	fixed := time.Date(2026, 8, 27, 14, 30, 55, 0, time.UTC)
	cfg := testsupport.NewConfig(t, testsupport.WithSharedWorkspaceDir())
	ws, err := workspace.New(cfg, nil, workspace.WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatal(err)
	}

	testsupport.WriteInput(t, cfg, "a.txt", "original")

	backupName, err := ws.BackupFile("a.txt")
	if err != nil {
		t.Fatalf("BackupFile failed: %v", err)
	}
	if backupName != "a_20260827_143055.bak" {
		t.Fatalf("backupName = %q", backupName)
	}
	if !regexp.MustCompile(`^a_\d{8}_\d{6}\.bak$`).MatchString(backupName) {
		t.Fatalf("backup name %q does not match pattern", backupName)
	}

	content, err := ws.ReadFile(backupName)
	if err != nil {
		t.Fatalf("ReadFile of backup failed: %v", err)
	}
	if content != "original" {
		t.Fatalf("backup content = %q", content)
	}
}

func TestBackupMissingFile(t *testing.T) {
	ws := newWorkspace(t)
	if _, err := ws.BackupFile("ghost.txt"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestValidateNameRejectsTraversal(t *testing.T) {
	ws := newWorkspace(t)
	for _, name := range []string{"", "/etc/passwd", "../escape.txt", "a/../../b"} {
		if _, err := ws.ReadFile(name); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("ReadFile(%q) should fail validation, got %v", name, err)
		}
	}
}
