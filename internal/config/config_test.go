package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"

	"videoinsights/internal/agreement"
	"videoinsights/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("VIDEOINSIGHTS_DATA", "")
	t.Setenv("VIDEOINSIGHTS_TAKES", "")
	chdir(t, t.TempDir())
	return home
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	isolate(t)
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if !strings.HasSuffix(resolved, filepath.Join(".config", "videoinsights", "config.toml")) {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Paths.DataFile != filepath.Join(cwd, "data.json") {
		t.Fatalf("unexpected data file: %q", cfg.Paths.DataFile)
	}
	if cfg.Paths.TakesFile != filepath.Join(filepath.Dir(cwd), "results_100_shared", "all_takes.json") {
		t.Fatalf("unexpected takes file: %q", cfg.Paths.TakesFile)
	}
	if diff := cmp.Diff(agreement.DefaultSources, cfg.Analysis.Sources); diff != "" {
		t.Fatalf("sources mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(agreement.DefaultOptions(), cfg.AgreementOptions()); diff != "" {
		t.Fatalf("agreement options mismatch (-want +got):\n%s", diff)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	home := isolate(t)
	configPath := filepath.Join(t.TempDir(), "videoinsights.toml")

	type payload struct {
		Paths struct {
			DataFile string `toml:"data_file"`
		} `toml:"paths"`
		Analysis struct {
			Sources   []string `toml:"sources"`
			MinVideos int      `toml:"min_videos"`
		} `toml:"analysis"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.DataFile = "~/datasets/data.json"
	custom.Analysis.Sources = []string{" GPT Vision ", "GPT Transcript"}
	custom.Analysis.MinVideos = 5
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom config to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.DataFile != filepath.Join(home, "datasets", "data.json") {
		t.Fatalf("expected tilde expansion, got %q", cfg.Paths.DataFile)
	}
	if diff := cmp.Diff([]string{"GPT Vision", "GPT Transcript"}, cfg.Analysis.Sources); diff != "" {
		t.Fatalf("sources mismatch (-want +got):\n%s", diff)
	}
	if cfg.Analysis.MinVideos != 5 {
		t.Fatalf("unexpected min videos: %d", cfg.Analysis.MinVideos)
	}
	if cfg.Analysis.TopPolarizing != agreement.DefaultTopPolarizing {
		t.Fatalf("expected default top_polarizing, got %d", cfg.Analysis.TopPolarizing)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized format, got %q", cfg.Logging.Format)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("videoinsights.toml", []byte("[analysis]\ntop_polarizing = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || filepath.Base(resolved) != "videoinsights.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if cfg.Analysis.TopPolarizing != 0 {
		t.Fatalf("expected unlimited polarizing list, got %d", cfg.Analysis.TopPolarizing)
	}
}

func TestEnvironmentOverridesPaths(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv("VIDEOINSIGHTS_DATA", filepath.Join(dir, "d.json"))
	t.Setenv("VIDEOINSIGHTS_TAKES", filepath.Join(dir, "t.json"))

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.DataFile != filepath.Join(dir, "d.json") || cfg.Paths.TakesFile != filepath.Join(dir, "t.json") {
		t.Fatalf("environment not applied: %+v", cfg.Paths)
	}
}

func TestDotEnvSuppliesMissingPaths(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv("VIDEOINSIGHTS_TAKES", filepath.Join(dir, "env-takes.json"))
	body := "VIDEOINSIGHTS_DATA=" + filepath.Join(dir, "dot-data.json") + "\n" +
		"VIDEOINSIGHTS_TAKES=" + filepath.Join(dir, "dot-takes.json") + "\n"
	if err := os.WriteFile(".env", []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.DataFile != filepath.Join(dir, "dot-data.json") {
		t.Fatalf("expected .env data path, got %q", cfg.Paths.DataFile)
	}
	if cfg.Paths.TakesFile != filepath.Join(dir, "env-takes.json") {
		t.Fatalf("expected environment to win over .env, got %q", cfg.Paths.TakesFile)
	}
	if _, set := os.LookupEnv("VIDEOINSIGHTS_DATA"); set && os.Getenv("VIDEOINSIGHTS_DATA") != "" {
		t.Fatal(".env leaked into the process environment")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "unknown key", body: "[paths]\nvideos = \"x\"\n", wantErr: "parse config"},
		{name: "empty sources", body: "[analysis]\nsources = []\n", wantErr: "analysis.sources"},
		{name: "duplicate source", body: "[analysis]\nsources = [\"a\", \"a\"]\n", wantErr: "more than once"},
		{name: "min videos", body: "[analysis]\nmin_videos = 0\n", wantErr: "analysis.min_videos"},
		{name: "threshold", body: "[analysis]\npolarizing_threshold = 120.0\n", wantErr: "analysis.polarizing_threshold"},
		{name: "log format", body: "[logging]\nformat = \"xml\"\n", wantErr: "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if diff := cmp.Diff(agreement.DefaultOptions(), cfg.AgreementOptions()); diff != "" {
		t.Fatalf("sample differs from defaults (-want +got):\n%s", diff)
	}
}
