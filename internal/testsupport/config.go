package testsupport

import (
	"path/filepath"
	"testing"

	"textlab/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.InputDir = filepath.Join(base, "input")
	cfgVal.Paths.OutputDir = filepath.Join(base, "output")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSharedWorkspaceDir points input and output at the same directory so
// written files can be read back, mirroring a flat workspace layout.
func WithSharedWorkspaceDir() ConfigOption {
	return func(b *configBuilder) {
		shared := filepath.Join(b.baseDir, "workspace")
		b.cfg.Paths.InputDir = shared
		b.cfg.Paths.OutputDir = shared
	}
}
