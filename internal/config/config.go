package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains input, output, and cache locations. Relative file names in
// the data section resolve against DataDir.
type Paths struct {
	DataDir      string `toml:"data_dir"`
	PaintingsCSV string `toml:"paintings_csv"`
	HexCSV       string `toml:"hex_csv"`
	ExplodedCSV  string `toml:"exploded_csv"`
	GenreDumpDir string `toml:"genre_dump_dir"`
	GraphsDir    string `toml:"graphs_dir"`
	CachePath    string `toml:"cache_path"`
	LogDir       string `toml:"log_dir"`
}

// YearOverride replaces the Year of one painting row before processing.
type YearOverride struct {
	Row  int    `toml:"row"`
	Year string `toml:"year"`
}

// Analysis contains thresholds and limits for the aggregation steps.
type Analysis struct {
	// GenreMinCount keeps genres that appear strictly more than this many times.
	GenreMinCount int `toml:"genre_min_count"`
	// TopN is the number of bars in color and topic charts.
	TopN int `toml:"top_n"`
	// OverTimeLimit caps how many distinct values get a time series.
	OverTimeLimit  int            `toml:"over_time_limit"`
	ExportGenreCSV bool           `toml:"export_genre_csv"`
	YearOverrides  []YearOverride `toml:"year_overrides"`
}

// Museum contains configuration for the Metropolitan Museum collection API.
type Museum struct {
	BaseURL        string `toml:"base_url"`
	Artist         string `toml:"artist"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	// ObjectLimit stops fetching after this many objects. Zero fetches all.
	ObjectLimit  int    `toml:"object_limit"`
	CacheEnabled bool   `toml:"cache_enabled"`
	TopicsTitle  string `toml:"topics_title"`
}

// Questions toggles which analyses `vangogh run` executes.
type Questions struct {
	ColorsOverTime bool `toml:"colors_over_time"`
	StylesOverTime bool `toml:"styles_over_time"`
	GenreColors    bool `toml:"genre_colors"`
	Topics         bool `toml:"topics"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for vangogh.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Analysis  Analysis  `toml:"analysis"`
	Museum    Museum    `toml:"museum"`
	Questions Questions `toml:"questions"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/vangogh/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("vangogh.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output directories charts and exports are
// written to. The data directory is input and is never created.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.GraphsDir}
	if c.Analysis.ExportGenreCSV {
		dirs = append(dirs, c.Paths.GenreDumpDir)
	}
	if c.Museum.CacheEnabled && c.Paths.CachePath != "" {
		dirs = append(dirs, filepath.Dir(c.Paths.CachePath))
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// GraphPath returns name resolved against the graphs directory unless it is
// already absolute.
func (c *Config) GraphPath(name string) string {
	return resolveAgainst(c.Paths.GraphsDir, name)
}

func resolveAgainst(dir, name string) string {
	name = strings.TrimSpace(name)
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultCachePath() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "vangogh", "met_objects.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/vangogh/met_objects.db"
	}
	return filepath.Join(home, ".cache", "vangogh", "met_objects.db")
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
