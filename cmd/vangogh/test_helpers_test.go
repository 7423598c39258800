package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vangogh/internal/config"
	"vangogh/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, museumURL string) *cliTestEnv {
	t.Helper()

	opts := []testsupport.ConfigOption{testsupport.WithFixtureData(), testsupport.WithGenreMinCount(1)}
	if museumURL != "" {
		opts = append(opts, testsupport.WithMuseumURL(museumURL))
	}
	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)

	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("VANGOGH_DATA_DIR", "")
	t.Setenv("MET_API_BASE_URL", "")

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)
	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--log-level", "error"}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
data_dir = %q
paintings_csv = %q
hex_csv = %q
exploded_csv = %q
genre_dump_dir = %q
graphs_dir = %q
cache_path = %q

[analysis]
genre_min_count = %d
top_n = 10
over_time_limit = 5

[museum]
base_url = %q
cache_enabled = true

[questions]
colors_over_time = true
styles_over_time = true
genre_colors = true
topics = %t
`,
		cfg.Paths.DataDir,
		cfg.Paths.PaintingsCSV,
		cfg.Paths.HexCSV,
		cfg.Paths.ExplodedCSV,
		cfg.Paths.GenreDumpDir,
		cfg.Paths.GraphsDir,
		cfg.Paths.CachePath,
		cfg.Analysis.GenreMinCount,
		cfg.Museum.BaseURL,
		cfg.Questions.Topics,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
