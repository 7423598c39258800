package testsupport

import (
	"path/filepath"
	"testing"

	"vangogh/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Data, graphs, dumps, and cache all live under one temp root.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	dataDir := filepath.Join(base, "data")
	cfgVal.Paths.DataDir = dataDir
	cfgVal.Paths.PaintingsCSV = filepath.Join(dataDir, "df_reduced.csv")
	cfgVal.Paths.HexCSV = filepath.Join(dataDir, "df.csv")
	cfgVal.Paths.ExplodedCSV = filepath.Join(dataDir, "df_reduced_exploded.csv")
	cfgVal.Paths.GenreDumpDir = filepath.Join(dataDir, "q2_testing_data")
	cfgVal.Paths.GraphsDir = filepath.Join(base, "graphs")
	cfgVal.Paths.CachePath = filepath.Join(base, "cache", "met_objects.db")
	cfgVal.Analysis.YearOverrides = nil

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

// WithMuseumURL points the museum client at a test server.
func WithMuseumURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Museum.BaseURL = url
	}
}

// WithGenreMinCount overrides the genre threshold.
func WithGenreMinCount(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Analysis.GenreMinCount = n
	}
}

// WithFixtureData writes the standard paintings and hex fixtures into the
// config's data directory.
func WithFixtureData() ConfigOption {
	return func(b *configBuilder) {
		WriteFixtures(b.t, b.cfg)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.GraphsDir)
}
