package durations

import (
	"encoding/json"
	"fmt"

	"videoinsights/internal/dataset"
)

// Lookup maps a video identifier to its duration in seconds, kept as the
// numeric literal found in the results file.
type Lookup map[string]json.Number

// BuildLookup indexes results by video id. Entries without a duration are
// skipped; a later entry for the same id replaces an earlier one.
func BuildLookup(results []dataset.Result) Lookup {
	lookup := make(Lookup, len(results))
	for _, result := range results {
		if !result.HasDuration() {
			continue
		}
		lookup[result.VideoID] = result.DurationSeconds
	}
	return lookup
}

// Outcome is the enrichment result for one video.
type Outcome struct {
	VideoID   string      `json:"video_id"`
	Matched   bool        `json:"matched"`
	Seconds   json.Number `json:"duration_seconds,omitempty"`
	Formatted string      `json:"duration_formatted,omitempty"`
	// Previous is the duration the record carried before this run.
	Previous json.Number `json:"previous_duration_seconds,omitempty"`
}

// Summary lists per-video outcomes in dataset order.
type Summary struct {
	Outcomes []Outcome `json:"outcomes"`
	Matched  int       `json:"matched"`
	Missing  int       `json:"missing"`
}

// Enrich sets duration fields on every video found in lookup. Videos without
// an entry are left untouched.
func Enrich(ds *dataset.Dataset, lookup Lookup) (Summary, error) {
	summary := Summary{Outcomes: make([]Outcome, 0, len(ds.Videos))}
	for _, video := range ds.Videos {
		outcome := Outcome{VideoID: video.ID()}
		if previous, _, ok := video.Duration(); ok {
			outcome.Previous = previous
		}
		seconds, ok := lookup[video.ID()]
		if !ok {
			summary.Missing++
			summary.Outcomes = append(summary.Outcomes, outcome)
			continue
		}

		value, err := seconds.Float64()
		if err != nil {
			return Summary{}, fmt.Errorf("video %s: duration %q: %w", video.ID(), seconds, err)
		}
		formatted := FormatDuration(value)
		if err := video.SetDuration(seconds, formatted); err != nil {
			return Summary{}, fmt.Errorf("video %s: %w", video.ID(), err)
		}

		outcome.Matched = true
		outcome.Seconds = seconds
		outcome.Formatted = formatted
		summary.Matched++
		summary.Outcomes = append(summary.Outcomes, outcome)
	}
	return summary, nil
}
