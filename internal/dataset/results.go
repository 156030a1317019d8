package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMissingResults is returned when the results file has no "results" member.
var ErrMissingResults = errors.New(`dataset: missing "results" array`)

var errNotNumber = errors.New("duration_seconds is not a number")

// Result is one entry of the secondary results collection.
type Result struct {
	VideoID string
	// DurationSeconds is empty when the entry has no metadata.duration_seconds.
	DurationSeconds json.Number
}

// HasDuration reports whether the entry carries a duration.
func (r Result) HasDuration() bool { return r.DurationSeconds != "" }

type resultsDocument struct {
	Results *[]rawResult `json:"results"`
}

type rawResult struct {
	VideoID  *string `json:"video_id"`
	Metadata *struct {
		DurationSeconds json.RawMessage `json:"duration_seconds"`
	} `json:"metadata"`
}

// LoadResults reads the secondary results file at path.
func LoadResults(path string) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	results, err := ParseResults(data)
	if err != nil {
		return nil, fmt.Errorf("parse results %s: %w", path, err)
	}
	return results, nil
}

// ParseResults decodes a results document.
func ParseResults(data []byte) ([]Result, error) {
	var doc resultsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Results == nil {
		return nil, ErrMissingResults
	}

	out := make([]Result, 0, len(*doc.Results))
	for i, raw := range *doc.Results {
		if raw.VideoID == nil {
			return nil, fmt.Errorf(`results[%d]: missing "video_id"`, i)
		}
		result := Result{VideoID: *raw.VideoID}
		if raw.Metadata != nil && len(raw.Metadata.DurationSeconds) > 0 {
			seconds, err := parseSeconds(raw.Metadata.DurationSeconds)
			if err != nil {
				return nil, fmt.Errorf("results[%d]: video %s: %w", i, result.VideoID, err)
			}
			result.DurationSeconds = seconds
		}
		out = append(out, result)
	}
	return out, nil
}

// parseSeconds accepts a bare JSON number. json.Number would also take a
// quoted numeric string, which SetDuration would then write back unquoted.
func parseSeconds(raw json.RawMessage) (json.Number, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] == '"' {
		return "", errNotNumber
	}
	var seconds json.Number
	if err := json.Unmarshal(trimmed, &seconds); err != nil || seconds == "" {
		return "", errNotNumber
	}
	return seconds, nil
}
