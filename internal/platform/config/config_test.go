package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"capacita/internal/platform/config"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	cfg, err := config.New(home)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.API.BaseURL != config.DefaultAPIBaseURL {
		t.Fatalf("unexpected base url: %s", cfg.API.BaseURL)
	}
	if cfg.Progress.DwellPeriod != 10*time.Second || cfg.Progress.DwellTotal != 300*time.Second {
		t.Fatalf("unexpected dwell settings: %+v", cfg.Progress)
	}
	if cfg.DBPath != filepath.Join(home, "capacita.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
}

func TestNewReadsYAML(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	yaml := "api:\n  base_url: http://localhost:4000/api/\nprogress:\n  dwell_period: 5s\n  dwell_total: 60s\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(home)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:4000/api" {
		t.Fatalf("expected trimmed base url, got %s", cfg.API.BaseURL)
	}
	if cfg.Progress.DwellPeriod != 5*time.Second || cfg.Progress.DwellTotal != time.Minute {
		t.Fatalf("unexpected dwell settings: %+v", cfg.Progress)
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty home should fail")
	}
	home := t.TempDir()
	yaml := "progress:\n  dwell_period: 2m\n  dwell_total: 1m\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(home); err == nil {
		t.Fatalf("period above total should fail")
	}
}
