package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"textlab/internal/config"
	"textlab/internal/logging"
	"textlab/internal/services"
	"textlab/internal/textutil"
)

// backupTimestampLayout formats backup timestamps as YYYYMMDD_HHMMSS.
const backupTimestampLayout = "20060102_150405"

// Workspace performs file operations against the configured input and output
// directories. All operations are synchronous and log their outcome; failures
// are classified with the services sentinels and returned to the caller.
type Workspace struct {
	inputDir  string
	outputDir string
	logger    *slog.Logger
	now       func() time.Time
}

// Option customizes workspace construction.
type Option func(*Workspace)

// WithClock overrides the time source used for backup names. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Workspace) {
		if now != nil {
			w.now = now
		}
	}
}

// New builds a workspace over the configured directories, creating them if
// absent. The logger is required context for every operation; pass nil to
// discard logs.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Workspace, error) {
	if cfg == nil {
		return nil, errors.New("workspace requires configuration")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	w := &Workspace{
		inputDir:  cfg.Paths.InputDir,
		outputDir: cfg.Paths.OutputDir,
		logger:    logging.NewComponentLogger(logger, "workspace"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// InputDir returns the directory read by ReadFile.
func (w *Workspace) InputDir() string { return w.inputDir }

// OutputDir returns the directory written by WriteFile.
func (w *Workspace) OutputDir() string { return w.outputDir }

// ReadFile returns the content of name under the input directory. A missing
// file fails with an error tagged services.ErrNotFound.
func (w *Workspace) ReadFile(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	path := filepath.Join(w.inputDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		marker := services.ErrWrite
		if errors.Is(err, fs.ErrNotExist) {
			marker = services.ErrNotFound
		}
		wrapped := services.Wrap(marker, "workspace", "read", name, err)
		w.logger.Error("read file failed", logging.String("file", name), logging.Error(err))
		return "", wrapped
	}

	w.logger.Info("read file", logging.String("file", name), logging.Int("bytes", len(data)))
	return string(data), nil
}

// WriteFile writes content to name under the output directory, creating parent
// directories as needed and overwriting any existing file. I/O failures are
// tagged services.ErrWrite.
func (w *Workspace) WriteFile(name, content string) error {
	if err := validateName(name); err != nil {
		return err
	}

	path := filepath.Join(w.outputDir, name)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			w.logger.Error("create parent directory failed", logging.String("file", name), logging.Error(err))
			return services.Wrap(services.ErrWrite, "workspace", "write", name, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		w.logger.Error("write file failed", logging.String("file", name), logging.Error(err))
		return services.Wrap(services.ErrWrite, "workspace", "write", name, err)
	}

	w.logger.Info("wrote file", logging.String("file", name), logging.Int("bytes", len(content)))
	return nil
}

// MergeFiles concatenates the named input files into outputName. Each section
// starts with a "--- <name> ---" header line followed by the file's raw
// content; a blank line separates consecutive sections.
func (w *Workspace) MergeFiles(names []string, outputName string) error {
	if len(names) == 0 {
		return services.Wrap(services.ErrValidation, "workspace", "merge", "no input files given", nil)
	}

	sections := make([]string, 0, len(names))
	for _, name := range names {
		content, err := w.ReadFile(name)
		if err != nil {
			return err
		}
		sections = append(sections, fmt.Sprintf("--- %s ---\n%s\n", name, content))
	}

	if err := w.WriteFile(outputName, strings.Join(sections, "\n")); err != nil {
		return err
	}

	w.logger.Info("merged files",
		logging.Int("count", len(names)),
		logging.String("output", outputName))
	return nil
}

// BackupFile copies name's content to "<basename>_<timestamp>.bak" in the
// output directory and returns the generated name. The timestamp is taken at
// call time.
func (w *Workspace) BackupFile(name string) (string, error) {
	content, err := w.ReadFile(name)
	if err != nil {
		return "", err
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	stem = textutil.SanitizeFileName(stem)
	backupName := fmt.Sprintf("%s_%s.bak", stem, w.now().Format(backupTimestampLayout))

	if err := w.WriteFile(backupName, content); err != nil {
		return "", err
	}

	w.logger.Info("created backup",
		logging.String("file", name),
		logging.String("backup", backupName))
	return backupName, nil
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return services.Wrap(services.ErrValidation, "workspace", "validate", "empty file name", nil)
	}
	if filepath.IsAbs(trimmed) {
		return services.Wrap(services.ErrValidation, "workspace", "validate",
			fmt.Sprintf("absolute path %q not allowed", name), nil)
	}
	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(trimmed)), "/") {
		if part == ".." {
			return services.Wrap(services.ErrValidation, "workspace", "validate",
				fmt.Sprintf("path %q escapes the workspace", name), nil)
		}
	}
	return nil
}
