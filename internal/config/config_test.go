package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"vangogh/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CACHE_HOME", "")
	workDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	t.Setenv("PWD", workDir)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(workDir, "data")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.PaintingsCSV != filepath.Join(wantData, "df_reduced.csv") {
		t.Fatalf("unexpected paintings csv: %q", cfg.Paths.PaintingsCSV)
	}
	if cfg.Paths.HexCSV != filepath.Join(wantData, "df.csv") {
		t.Fatalf("unexpected hex csv: %q", cfg.Paths.HexCSV)
	}
	if cfg.Paths.GenreDumpDir != filepath.Join(wantData, "q2_testing_data") {
		t.Fatalf("unexpected genre dump dir: %q", cfg.Paths.GenreDumpDir)
	}
	if cfg.Paths.GraphsDir != filepath.Join(workDir, "graphs") {
		t.Fatalf("unexpected graphs dir: %q", cfg.Paths.GraphsDir)
	}
	if cfg.Paths.CachePath != filepath.Join(tempHome, ".cache", "vangogh", "met_objects.db") {
		t.Fatalf("unexpected cache path: %q", cfg.Paths.CachePath)
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("expected no log dir by default, got %q", cfg.Paths.LogDir)
	}
	if cfg.Analysis.GenreMinCount != 15 || cfg.Analysis.TopN != 10 || cfg.Analysis.OverTimeLimit != 5 {
		t.Fatalf("unexpected analysis defaults: %+v", cfg.Analysis)
	}
	if len(cfg.Analysis.YearOverrides) != 1 || cfg.Analysis.YearOverrides[0] != (config.YearOverride{Row: 1618, Year: "1888"}) {
		t.Fatalf("unexpected year overrides: %+v", cfg.Analysis.YearOverrides)
	}
	if cfg.Museum.BaseURL != config.Default().Museum.BaseURL {
		t.Fatalf("unexpected museum base url: %q", cfg.Museum.BaseURL)
	}
	if !cfg.Questions.GenreColors || cfg.Questions.Topics {
		t.Fatalf("unexpected question toggles: %+v", cfg.Questions)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.GraphsDir); err != nil || !info.IsDir() {
		t.Fatalf("expected graphs dir to exist: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.DataDir); !os.IsNotExist(err) {
		t.Fatalf("expected data dir to be left alone, stat err=%v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "vangogh.toml")

	type payload struct {
		Paths struct {
			DataDir      string `toml:"data_dir"`
			PaintingsCSV string `toml:"paintings_csv"`
		} `toml:"paths"`
		Analysis struct {
			TopN int `toml:"top_n"`
		} `toml:"analysis"`
		Museum struct {
			BaseURL string `toml:"base_url"`
		} `toml:"museum"`
		Questions struct {
			Topics bool `toml:"topics"`
		} `toml:"questions"`
	}
	custom := payload{}
	custom.Paths.DataDir = filepath.Join(tempDir, "input")
	custom.Paths.PaintingsCSV = "/srv/paintings.csv"
	custom.Analysis.TopN = 5
	custom.Museum.BaseURL = "https://example.com/met/"
	custom.Questions.Topics = true
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.PaintingsCSV != "/srv/paintings.csv" {
		t.Fatalf("expected absolute paintings path to be kept, got %q", cfg.Paths.PaintingsCSV)
	}
	if cfg.Paths.HexCSV != filepath.Join(tempDir, "input", "df.csv") {
		t.Fatalf("expected hex csv under custom data dir, got %q", cfg.Paths.HexCSV)
	}
	if cfg.Analysis.TopN != 5 {
		t.Fatalf("expected top_n 5, got %d", cfg.Analysis.TopN)
	}
	if cfg.Museum.BaseURL != "https://example.com/met" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Museum.BaseURL)
	}
	if !cfg.Questions.Topics {
		t.Fatal("expected topics question enabled")
	}
	// Unset keys keep their defaults.
	if cfg.Analysis.GenreMinCount != 15 {
		t.Fatalf("expected default genre_min_count, got %d", cfg.Analysis.GenreMinCount)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VANGOGH_DATA_DIR", "/tmp/vangogh-data")
	t.Setenv("MET_API_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("VANGOGH_LOG_LEVEL", "DEBUG")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DataDir != "/tmp/vangogh-data" {
		t.Errorf("expected data dir from env, got %q", cfg.Paths.DataDir)
	}
	if cfg.Museum.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("expected base url from env, got %q", cfg.Museum.BaseURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected lowercased level from env, got %q", cfg.Logging.Level)
	}
}

func TestYearOverridesLastEntryWins(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "vangogh.toml")
	content := `
[[analysis.year_overrides]]
row = 3
year = "1885"

[[analysis.year_overrides]]
row = 3
year = " 1886 "
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	var found bool
	for _, override := range cfg.Analysis.YearOverrides {
		if override.Row == 1618 {
			t.Fatalf("expected file overrides to replace the defaults, got %+v", cfg.Analysis.YearOverrides)
		}
		if override.Row != 3 {
			continue
		}
		if found {
			t.Fatalf("expected a single override for row 3, got %+v", cfg.Analysis.YearOverrides)
		}
		found = true
		if override.Year != "1886" {
			t.Fatalf("expected last override to win, got %q", override.Year)
		}
	}
	if !found {
		t.Fatalf("expected override for row 3, got %+v", cfg.Analysis.YearOverrides)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "collectionapi.metmuseum.org") {
		t.Fatalf("sample config missing museum base url: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Analysis.TopN != 10 {
		t.Fatalf("expected sample top_n 10, got %d", cfg.Analysis.TopN)
	}
	if len(cfg.Analysis.YearOverrides) != 1 {
		t.Fatalf("expected one sample override, got %+v", cfg.Analysis.YearOverrides)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative genre threshold", func(c *config.Config) { c.Analysis.GenreMinCount = -1 }},
		{"zero top n", func(c *config.Config) { c.Analysis.TopN = 0 }},
		{"zero over time limit", func(c *config.Config) { c.Analysis.OverTimeLimit = 0 }},
		{"bad override year", func(c *config.Config) {
			c.Analysis.YearOverrides = []config.YearOverride{{Row: 1, Year: "88"}}
		}},
		{"signed override year", func(c *config.Config) {
			c.Analysis.YearOverrides = []config.YearOverride{{Row: 1, Year: "+188"}}
		}},
		{"negative override row", func(c *config.Config) {
			c.Analysis.YearOverrides = []config.YearOverride{{Row: -1, Year: "1888"}}
		}},
		{"non http base url", func(c *config.Config) { c.Museum.BaseURL = "ftp://example.com" }},
		{"zero timeout", func(c *config.Config) { c.Museum.TimeoutSeconds = 0 }},
		{"negative object limit", func(c *config.Config) { c.Museum.ObjectLimit = -2 }},
		{"cache without path", func(c *config.Config) { c.Paths.CachePath = "" }},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestGraphPath(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.GraphsDir = "/out/graphs"
	if got := cfg.GraphPath("q2.html"); got != filepath.Join("/out/graphs", "q2.html") {
		t.Fatalf("unexpected relative graph path: %q", got)
	}
	if got := cfg.GraphPath("/abs/q4.html"); got != "/abs/q4.html" {
		t.Fatalf("unexpected absolute graph path: %q", got)
	}
}
