package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Window defaults
	if cfg.Window.Title != "VIPO: Pareto Frontier Viewer" {
		t.Errorf("unexpected title %q", cfg.Window.Title)
	}
	if cfg.Window.Width != 500 || cfg.Window.Height != 500 {
		t.Errorf("expected 500x500 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Window.MSAASamples != 4 {
		t.Errorf("expected 4 MSAA samples, got %d", cfg.Window.MSAASamples)
	}

	// Camera defaults
	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 10000 {
		t.Errorf("expected near/far 0.1/10000, got %f/%f", cfg.Camera.Near, cfg.Camera.Far)
	}
	if cfg.Camera.Radius != 5 {
		t.Errorf("expected radius 5, got %f", cfg.Camera.Radius)
	}

	// Controls defaults
	if cfg.Controls.OrbitSensitivity != 0.01 {
		t.Errorf("expected orbit sensitivity 0.01, got %f", cfg.Controls.OrbitSensitivity)
	}
	if cfg.Controls.ZoomSensitivity != 0.1 {
		t.Errorf("expected zoom sensitivity 0.1, got %f", cfg.Controls.ZoomSensitivity)
	}
	if cfg.Controls.PanFactor != 1.3 {
		t.Errorf("expected pan factor 1.3, got %f", cfg.Controls.PanFactor)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileMergesWithDefaults(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "vipo.yaml")
	content := `window:
  width: 800
  height: 600
controls:
  orbit_sensitivity: 0.02
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	// Overridden values
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Controls.OrbitSensitivity != 0.02 {
		t.Errorf("expected orbit sensitivity 0.02, got %f", cfg.Controls.OrbitSensitivity)
	}

	// Untouched defaults survive the merge
	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45 after merge, got %f", cfg.Camera.FOV)
	}
	if cfg.Controls.PanFactor != 1.3 {
		t.Errorf("expected pan factor 1.3 after merge, got %f", cfg.Controls.PanFactor)
	}
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("window: [not a map"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := loadFromFile(Default(), path); err == nil {
		t.Error("expected an error for invalid YAML")
	}
}

func TestConfigDirNotEmpty(t *testing.T) {
	if ConfigDir() == "" {
		t.Error("ConfigDir() returned empty path")
	}
}
