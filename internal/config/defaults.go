package config

import "videoinsights/internal/agreement"

const (
	defaultConfigPath = "~/.config/videoinsights/config.toml"
	projectConfigName = "videoinsights.toml"
	defaultDataFile   = "data.json"
	defaultTakesFile  = "../results_100_shared/all_takes.json"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataFile:  defaultDataFile,
			TakesFile: defaultTakesFile,
		},
		Analysis: Analysis{
			Sources:             append([]string(nil), agreement.DefaultSources...),
			MinVideos:           agreement.DefaultMinVideos,
			PolarizingThreshold: agreement.DefaultPolarizingThreshold,
			TopPolarizing:       agreement.DefaultTopPolarizing,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
