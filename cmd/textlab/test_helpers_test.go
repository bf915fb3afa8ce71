package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	configPath string
	inputDir   string
	outputDir  string
	logDir     string
}

// setupCLITestEnv writes a config file whose input and output directories are
// the same temp directory, so merge/backup output can be read back.
func setupCLITestEnv(t *testing.T) cliTestEnv {
	t.Helper()

	root := t.TempDir()
	shared := filepath.Join(root, "workspace")
	logDir := filepath.Join(root, "logs")

	configPath := filepath.Join(root, "config.toml")
	content := fmt.Sprintf(`[paths]
input_dir = %q
output_dir = %q
log_dir = %q

[analysis]
top_words = 5

[logging]
format = "console"
level = "error"

[history]
enabled = true
limit = 20
`, shared, shared, logDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return cliTestEnv{
		configPath: configPath,
		inputDir:   shared,
		outputDir:  shared,
		logDir:     logDir,
	}
}

func (env cliTestEnv) writeInput(t *testing.T, name, content string) {
	t.Helper()
	if err := os.MkdirAll(env.inputDir, 0o755); err != nil {
		t.Fatalf("mkdir input: %v", err)
	}
	if err := os.WriteFile(filepath.Join(env.inputDir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write input %s: %v", name, err)
	}
}

func runCLI(t *testing.T, env cliTestEnv, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}
