package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envDataFile  = "VIDEOINSIGHTS_DATA"
	envTakesFile = "VIDEOINSIGHTS_TAKES"
	dotEnvFile   = ".env"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAnalysis()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	dotEnv, err := readDotEnv()
	if err != nil {
		return err
	}
	if value := lookupEnv(envDataFile, dotEnv); value != "" {
		c.Paths.DataFile = value
	}
	if value := lookupEnv(envTakesFile, dotEnv); value != "" {
		c.Paths.TakesFile = value
	}
	if strings.TrimSpace(c.Paths.DataFile) == "" {
		c.Paths.DataFile = defaultDataFile
	}
	if strings.TrimSpace(c.Paths.TakesFile) == "" {
		c.Paths.TakesFile = defaultTakesFile
	}

	if c.Paths.DataFile, err = expandPath(strings.TrimSpace(c.Paths.DataFile)); err != nil {
		return fmt.Errorf("paths.data_file: %w", err)
	}
	if c.Paths.TakesFile, err = expandPath(strings.TrimSpace(c.Paths.TakesFile)); err != nil {
		return fmt.Errorf("paths.takes_file: %w", err)
	}
	return nil
}

// readDotEnv parses ./.env without touching the process environment. A
// missing file yields no values.
func readDotEnv() (map[string]string, error) {
	values, err := godotenv.Read(dotEnvFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", dotEnvFile, err)
	}
	return values, nil
}

// lookupEnv prefers the process environment over .env values.
func lookupEnv(name string, dotEnv map[string]string) string {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value
	}
	return strings.TrimSpace(dotEnv[name])
}

func (c *Config) normalizeAnalysis() {
	sources := make([]string, 0, len(c.Analysis.Sources))
	for _, source := range c.Analysis.Sources {
		if trimmed := strings.TrimSpace(source); trimmed != "" {
			sources = append(sources, trimmed)
		}
	}
	c.Analysis.Sources = sources
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
