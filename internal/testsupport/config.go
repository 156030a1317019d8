package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"videoinsights/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose input documents live in a unique temp
// directory per test. Logging is quiet unless an option changes it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataFile = filepath.Join(base, "data.json")
	cfgVal.Paths.TakesFile = filepath.Join(base, "all_takes.json")
	cfgVal.Logging.Level = "error"

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

// WithDataset writes content to the configured dataset path.
func WithDataset(content string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Paths.DataFile, content)
	}
}

// WithTakes writes content to the configured results path.
func WithTakes(content string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Paths.TakesFile, content)
	}
}

// WithSources overrides the compared annotation sources.
func WithSources(sources ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Analysis.Sources = append([]string(nil), sources...)
	}
}

// WithMinVideos overrides the ranked-list eligibility floor.
func WithMinVideos(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Analysis.MinVideos = n
	}
}

// WriteConfig encodes cfg as TOML next to its dataset and returns the path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(filepath.Dir(cfg.Paths.DataFile), "videoinsights.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
	return path
}
