package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if len(c.Analysis.Sources) == 0 {
		return errors.New("analysis.sources must list at least one source")
	}
	seen := make(map[string]struct{}, len(c.Analysis.Sources))
	for _, source := range c.Analysis.Sources {
		if _, dup := seen[source]; dup {
			return fmt.Errorf("analysis.sources: %q listed more than once", source)
		}
		seen[source] = struct{}{}
	}
	if c.Analysis.MinVideos < 1 {
		return errors.New("analysis.min_videos must be at least 1")
	}
	if c.Analysis.PolarizingThreshold < 0 || c.Analysis.PolarizingThreshold > 100 {
		return errors.New("analysis.polarizing_threshold must be between 0 and 100")
	}
	if c.Analysis.TopPolarizing < 0 {
		return errors.New("analysis.top_polarizing must be zero (unlimited) or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
