package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateMuseum(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.GenreMinCount < 0 {
		return errors.New("analysis.genre_min_count must not be negative")
	}
	if c.Analysis.TopN <= 0 {
		return errors.New("analysis.top_n must be positive")
	}
	if c.Analysis.OverTimeLimit <= 0 {
		return errors.New("analysis.over_time_limit must be positive")
	}
	for i, override := range c.Analysis.YearOverrides {
		if override.Row < 0 {
			return fmt.Errorf("analysis.year_overrides[%d].row must not be negative", i)
		}
		if !isYear(override.Year) {
			return fmt.Errorf("analysis.year_overrides[%d].year %q must be a four digit year", i, override.Year)
		}
	}
	return nil
}

func (c *Config) validateMuseum() error {
	parsed, err := url.Parse(c.Museum.BaseURL)
	if err != nil {
		return fmt.Errorf("museum.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("museum.base_url must be an http(s) URL, got %q", c.Museum.BaseURL)
	}
	if c.Museum.TimeoutSeconds <= 0 {
		return errors.New("museum.timeout_seconds must be positive")
	}
	if c.Museum.ObjectLimit < 0 {
		return errors.New("museum.object_limit must not be negative")
	}
	if c.Museum.CacheEnabled && c.Paths.CachePath == "" {
		return errors.New("paths.cache_path must be set when museum.cache_enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func isYear(value string) bool {
	return len(value) == 4 && strings.Trim(value, "0123456789") == ""
}
