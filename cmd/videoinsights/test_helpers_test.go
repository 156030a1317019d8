package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"videoinsights/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	dataPath   string
	takesPath  string
}

const testDataset = `{
  "videos": [
    {"id": "v1", "models": {
      "GPT+Whisper": {"tags": ["economy", "tax"], "host_agrees": true},
      "Gemma+Whisper": {"tags": ["economy", "tax"], "host_agrees": true},
      "GPT Vision": {"tags": ["economy"], "host_agrees": true},
      "GPT Transcript": {"tags": ["tax", "economy"], "host_agrees": true}}},
    {"id": "v2", "models": {
      "GPT+Whisper": {"tags": ["economy"], "host_agrees": true},
      "Gemma+Whisper": {"tags": ["economy"], "host_agrees": true},
      "GPT Vision": {"tags": ["economy"], "host_agrees": true},
      "GPT Transcript": {"tags": ["economy"], "host_agrees": true}}},
    {"id": "v3", "models": {
      "GPT+Whisper": {"tags": ["economy"], "host_agrees": true},
      "Gemma+Whisper": {"tags": ["economy"], "host_agrees": true},
      "GPT Vision": {"tags": ["economy"], "host_agrees": true},
      "GPT Transcript": {"tags": ["economy"], "host_agrees": true}}},
    {"id": "v4", "models": {
      "GPT+Whisper": {"tags": ["economy"], "host_agrees": false}}}
  ]
}`

const testTakes = `{"results": [
  {"video_id": "v1", "metadata": {"duration_seconds": 125}},
  {"video_id": "v2", "metadata": {"duration_seconds": 3600}},
  {"video_id": "v3", "metadata": {}}
]}`

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("VIDEOINSIGHTS_DATA", "")
	t.Setenv("VIDEOINSIGHTS_TAKES", "")

	cfg := testsupport.NewConfig(t,
		testsupport.WithDataset(testDataset),
		testsupport.WithTakes(testTakes),
	)
	return &cliTestEnv{
		baseDir:    filepath.Dir(cfg.Paths.DataFile),
		configPath: testsupport.WriteConfig(t, cfg),
		dataPath:   cfg.Paths.DataFile,
		takesPath:  cfg.Paths.TakesFile,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
