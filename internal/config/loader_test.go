package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-replay/internal/core"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "fps: 30\nui_height: 40\ntheme:\n  ball: bright-yellow\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", cfg.FPS)
	}
	if cfg.UIHeight != 40 {
		t.Errorf("UIHeight = %d, expected 40", cfg.UIHeight)
	}

	th := cfg.BuildTheme()
	if th.Ball != core.ColorBrightYellow {
		t.Errorf("Ball color = %d, expected bright yellow", th.Ball)
	}
	// Unset fields keep the built-in default
	if th.Paddle != core.ColorWhite {
		t.Errorf("Paddle color = %d, expected white default", th.Paddle)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load("/nonexistent/replay.yaml"); err == nil {
		t.Error("Load() should fail for an explicit missing path")
	}
}

func TestLoadNormalizesZeroValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparse.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\n"), 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS = %d, expected normalized 60", cfg.FPS)
	}
	if cfg.UIHeight != 60 {
		t.Errorf("UIHeight = %d, expected normalized 60", cfg.UIHeight)
	}
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	// Loading with no custom path (and no user/local config in the test
	// environment working dir) must produce a usable config either way.
	cfg := Default()
	if cfg.FPS != 60 || cfg.UIHeight != 60 {
		t.Errorf("Default() = %+v, expected fps 60, ui_height 60", cfg)
	}
	th := cfg.BuildTheme()
	if th.ScrubFill != core.ColorBlue {
		t.Errorf("default ScrubFill = %d, expected blue", th.ScrubFill)
	}
}
