package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"videoinsights/internal/agreement"
	"videoinsights/internal/testsupport"
)

func TestCLIAnalyzeText(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"analyze"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "Topics with 100% Host Agreement Across All Models:\n")
	requireContains(t, out, "economy: 3 videos, 100% host agreement\n")
	requireContains(t, out, "Videos where all 4 models perfectly agree on host response: 3/4 (75.0%)\n")
	if strings.Contains(out, "tax:") {
		t.Fatalf("tag on a single video was reported:\n%s", out)
	}
}

func TestCLIAnalyzeJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"analyze", "--format", "json"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze --format json: %v", err)
	}
	var report agreement.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if len(report.PerfectAgreement) != 1 || report.PerfectAgreement[0].Tag != "economy" {
		t.Fatalf("unexpected agreement list: %+v", report.PerfectAgreement)
	}
	if report.VideosSkipped != 1 || report.Unanimity.Total != 4 {
		t.Fatalf("unexpected counts: skipped=%d total=%d", report.VideosSkipped, report.Unanimity.Total)
	}
}

func TestCLIAnalyzeTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"analyze", "-f", "table"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze --format table: %v", err)
	}
	requireContains(t, out, "Topics with 100% Host Agreement Across All Models")
	requireContains(t, out, "economy")
	requireContains(t, out, "(none)")
	requireContains(t, out, "3/4 (75.0%)")
}

func TestCLIAnalyzeRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"analyze", "--format", "csv"}, env.configPath); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestCLIDurations(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"durations"}, env.configPath)
	if err != nil {
		t.Fatalf("durations: %v", err)
	}
	requireContains(t, out, "Adding durations for 4 videos...\n")
	requireContains(t, out, "  ✓ v1: 2:05\n")
	requireContains(t, out, "  ✓ v2: 60:00\n")
	requireContains(t, out, "  ✗ v3: Duration not found\n")
	requireContains(t, out, "✅ Updated "+env.dataPath)

	requireContains(t, testsupport.ReadFile(t, env.dataPath), `"duration_formatted": "60:00"`)
}

func TestCLIDurationsFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	otherData := filepath.Join(env.baseDir, "other.json")
	testsupport.WriteFile(t, otherData, `{"videos": [{"id": "v2"}]}`)

	out, _, err := runCLI(t, []string{"durations", "--data", otherData, "--dry-run", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("durations: %v", err)
	}
	var summary struct {
		Matched  int `json:"matched"`
		Missing  int `json:"missing"`
		Outcomes []struct {
			VideoID   string `json:"video_id"`
			Formatted string `json:"duration_formatted"`
		} `json:"outcomes"`
	}
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v\n%s", err, out)
	}
	if summary.Matched != 1 || summary.Outcomes[0].Formatted != "60:00" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if strings.Contains(testsupport.ReadFile(t, otherData), "duration") {
		t.Fatal("dry run wrote the dataset")
	}
}

func TestCLIDurationsMissingTakesFails(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"durations", "--takes", filepath.Join(env.baseDir, "nope.json")}, env.configPath); err == nil {
		t.Fatal("expected error for missing results file")
	}
}

func TestCLIConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "generated", "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration to "+target)

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireContains(t, out, "Sources: GPT+Whisper, Gemma+Whisper, GPT Vision, GPT Transcript")
	requireContains(t, out, "Configuration valid")
}

func TestCLIInvalidConfigFails(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.configPath, "[analysis]\nmin_videos = 0\n")
	if _, _, err := runCLI(t, []string{"analyze"}, env.configPath); err == nil {
		t.Fatal("expected invalid config to fail")
	}
}
