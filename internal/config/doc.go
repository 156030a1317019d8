// Package config loads, normalizes, and validates videoinsights configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the VIDEOINSIGHTS_DATA and
// VIDEOINSIGHTS_TAKES environment overrides. Command-line flags are applied on
// top by the CLI.
package config
