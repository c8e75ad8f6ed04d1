package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"runwalk_timer/internal/models"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr() != "127.0.0.1:8080" {
		t.Fatalf("addr = %q", cfg.HTTP.Addr())
	}
	if cfg.DBPath != "runwalk.db" || cfg.LogLevel != "info" || cfg.Tick != time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Defaults != models.DefaultSettings() {
		t.Fatalf("settings defaults = %+v", cfg.Defaults)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yml := "http:\n  port: 9090\ndb:\n  path: /tmp/x.db\ntimer:\n  tick: 250ms\ndefaults:\n  run_sec: 90\n  sets: -2\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RUNWALK_HTTP_HOST", "0.0.0.0")
	t.Setenv("RUNWALK_LOG_LEVEL", "DEBUG")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr() != "0.0.0.0:9090" {
		t.Fatalf("addr = %q", cfg.HTTP.Addr())
	}
	if cfg.DBPath != "/tmp/x.db" || cfg.Tick != 250*time.Millisecond || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Defaults.RunSeconds != 90 || cfg.Defaults.Sets != 1 {
		t.Fatalf("defaults not applied/clamped: %+v", cfg.Defaults)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port", map[string]string{"RUNWALK_HTTP_PORT": "70000"}},
		{"tick", map[string]string{"RUNWALK_TIMER_TICK": "1ns"}},
		{"db", map[string]string{"RUNWALK_DB_PATH": " "}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(t.TempDir()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("http: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}
