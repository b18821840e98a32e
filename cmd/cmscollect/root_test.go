package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/gyeh/providerstats/internal/config"
)

func resetConfig(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { cfg = config.Default() })
}

func TestLoadConfig_EnvAndFlags(t *testing.T) {
	resetConfig(t)
	t.Setenv("CMSCOLLECT_DSN", "postgres://env-host/cms")
	t.Setenv("CMSCOLLECT_LOG_LEVEL", "debug")
	t.Setenv("CMSCOLLECT_REGION", "FL")

	if err := collectCmd.ParseFlags([]string{"--limit", "50", "--pause", "500ms", "--years", "2021,2019"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := loadConfig(collectCmd, nil); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.DSN != "postgres://env-host/cms" {
		t.Errorf("DSN: got %q", cfg.DSN)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "text" {
		t.Errorf("log: got level %q format %q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Region != "FL" {
		t.Errorf("Region: got %q", cfg.Region)
	}
	if cfg.RecordLimit != 50 {
		t.Errorf("RecordLimit: got %d", cfg.RecordLimit)
	}
	if cfg.Pause != 500*time.Millisecond {
		t.Errorf("Pause: got %v", cfg.Pause)
	}
	if !slices.Equal(cfg.Years, []int{2021, 2019}) {
		t.Errorf("Years: got %v", cfg.Years)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout: got %v", cfg.Timeout)
	}
}

func TestLoadConfig_TargetsFile(t *testing.T) {
	resetConfig(t)
	path := filepath.Join(t.TempDir(), "targets.yaml")
	if err := os.WriteFile(path, []byte("cities:\n  - Savannah\nspecialties:\n  - Hand Surgery\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := migrateCmd.ParseFlags([]string{"--config", path}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := loadConfig(migrateCmd, nil); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.TargetsFile != path {
		t.Errorf("TargetsFile: got %q, want %q", cfg.TargetsFile, path)
	}
	if !slices.Equal(cfg.Targets.Cities, []string{"Savannah"}) {
		t.Errorf("Cities: got %v", cfg.Targets.Cities)
	}
	if !slices.Equal(cfg.Targets.Specialties, []string{"Hand Surgery"}) {
		t.Errorf("Specialties: got %v", cfg.Targets.Specialties)
	}
}

func TestLoadConfig_BadTargetsFile(t *testing.T) {
	resetConfig(t)
	if err := summaryCmd.ParseFlags([]string{"--config", "/nonexistent/targets.yaml"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := loadConfig(summaryCmd, nil); err == nil {
		t.Error("expected error for missing targets file")
	}
}
