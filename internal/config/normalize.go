package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAnalysis()
	c.normalizeMuseum()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if value, ok := os.LookupEnv("VANGOGH_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}

	dataFiles := []struct {
		key      string
		value    *string
		fallback string
	}{
		{"paths.paintings_csv", &c.Paths.PaintingsCSV, defaultPaintingsCSV},
		{"paths.hex_csv", &c.Paths.HexCSV, defaultHexCSV},
		{"paths.exploded_csv", &c.Paths.ExplodedCSV, defaultExplodedCSV},
		{"paths.genre_dump_dir", &c.Paths.GenreDumpDir, defaultGenreDumpDir},
	}
	for _, file := range dataFiles {
		if strings.TrimSpace(*file.value) == "" {
			*file.value = file.fallback
		}
		if *file.value, err = expandPath(resolveAgainst(c.Paths.DataDir, *file.value)); err != nil {
			return fmt.Errorf("%s: %w", file.key, err)
		}
	}

	if strings.TrimSpace(c.Paths.GraphsDir) == "" {
		c.Paths.GraphsDir = defaultGraphsDir
	}
	if c.Paths.GraphsDir, err = expandPath(c.Paths.GraphsDir); err != nil {
		return fmt.Errorf("paths.graphs_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CachePath) == "" {
		c.Paths.CachePath = defaultCachePath()
	}
	if c.Paths.CachePath, err = expandPath(c.Paths.CachePath); err != nil {
		return fmt.Errorf("paths.cache_path: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

// normalizeAnalysis trims override years and keeps the last override for
// each row. Any [[analysis.year_overrides]] table in the file replaces the
// default list as a whole.
func (c *Config) normalizeAnalysis() {
	if len(c.Analysis.YearOverrides) == 0 {
		return
	}
	index := make(map[int]int, len(c.Analysis.YearOverrides))
	overrides := make([]YearOverride, 0, len(c.Analysis.YearOverrides))
	for _, override := range c.Analysis.YearOverrides {
		override.Year = strings.TrimSpace(override.Year)
		if pos, seen := index[override.Row]; seen {
			overrides[pos] = override
			continue
		}
		index[override.Row] = len(overrides)
		overrides = append(overrides, override)
	}
	c.Analysis.YearOverrides = overrides
}

func (c *Config) normalizeMuseum() {
	if value, ok := os.LookupEnv("MET_API_BASE_URL"); ok && strings.TrimSpace(value) != "" {
		c.Museum.BaseURL = value
	}
	c.Museum.BaseURL = strings.TrimRight(strings.TrimSpace(c.Museum.BaseURL), "/")
	if c.Museum.BaseURL == "" {
		c.Museum.BaseURL = defaultMetBaseURL
	}
	c.Museum.Artist = strings.TrimSpace(c.Museum.Artist)
	if c.Museum.Artist == "" {
		c.Museum.Artist = defaultMetArtist
	}
	if c.Museum.TimeoutSeconds <= 0 {
		c.Museum.TimeoutSeconds = defaultMetTimeout
	}
	c.Museum.TopicsTitle = strings.TrimSpace(c.Museum.TopicsTitle)
	if c.Museum.TopicsTitle == "" {
		c.Museum.TopicsTitle = defaultTopicsTitle
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "json":
	default:
		c.Logging.Format = defaultLogFormat
	}
	if value, ok := os.LookupEnv("VANGOGH_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
