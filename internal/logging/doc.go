// Package logging assembles the structured slog loggers used by the
// videoinsights commands.
//
// It owns the console and JSON handlers, parses levels and formats from
// configuration, and exposes typed attribute helpers plus the standard field
// keys (component, run_id, event_type, video_id) so every command emits logs
// of the same shape. Loggers write to stderr by default, leaving stdout to the
// reports. A no-op logger is provided for tests and optional wiring.
package logging
