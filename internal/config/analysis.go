package config

import "videoinsights/internal/agreement"

// AgreementOptions returns the [analysis] section as report options.
func (c *Config) AgreementOptions() agreement.Options {
	return agreement.Options{
		Sources:             append([]string(nil), c.Analysis.Sources...),
		MinVideos:           c.Analysis.MinVideos,
		PolarizingThreshold: c.Analysis.PolarizingThreshold,
		TopPolarizing:       c.Analysis.TopPolarizing,
	}
}
