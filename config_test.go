package tempo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TimeScale != 1 {
		t.Errorf("TimeScale = %f, want 1", cfg.TimeScale)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("Window = %dx%d, want 640x480", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "tempo.toml", `
time_scale = 0.5
max_delta = 0.1
debug = true
fps_log_interval = 2.0

[window]
title = "bench"
width = 800
tps = 120

[logging]
level = "debug"
format = "json"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TimeScale != 0.5 || cfg.MaxDelta != 0.1 || !cfg.Debug || cfg.FPSLogInterval != 2 {
		t.Errorf("top-level fields = %+v", cfg)
	}
	if cfg.Window.Title != "bench" || cfg.Window.Width != 800 || cfg.Window.TPS != 120 {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.Window.Height != 480 {
		t.Errorf("Height = %d, want default 480", cfg.Window.Height)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "tempo.yml", `
max_delta: 0.05
window:
  title: yaml
  resizable: true
logging:
  level: warn
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TimeScale != 1 {
		t.Errorf("TimeScale = %f, want default 1", cfg.TimeScale)
	}
	if cfg.MaxDelta != 0.05 {
		t.Errorf("MaxDelta = %f, want 0.05", cfg.MaxDelta)
	}
	if cfg.Window.Title != "yaml" || !cfg.Window.Resizable {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadConfig(writeConfig(t, "tempo.ini", "x=1")); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := LoadConfig(writeConfig(t, "bad.toml", "time_scale = [")); err == nil {
		t.Error("expected error for malformed TOML")
	}
	if _, err := LoadConfig(writeConfig(t, "neg.yaml", "max_delta: -1")); err == nil {
		t.Error("expected error for negative max_delta")
	}
}

func TestNewLogger(t *testing.T) {
	for _, cfg := range []LoggingConfig{
		{Level: "debug", Format: "json"},
		{Level: "info", Format: "console"},
		{Level: "nonsense"},
	} {
		log, err := NewLogger(cfg)
		if err != nil {
			t.Fatalf("%+v: unexpected error: %v", cfg, err)
		}
		if log == nil {
			t.Fatalf("%+v: nil logger", cfg)
		}
	}

	log, _ := NewLogger(LoggingConfig{Level: "warn"})
	if log.Core().Enabled(-1) {
		t.Error("warn logger should not enable debug")
	}
}
