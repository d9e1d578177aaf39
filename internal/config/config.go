// Package config provides YAML-based viewer configuration with embedded
// defaults and a layered search path.
package config

import (
	"github.com/vovakirdan/tui-replay/internal/core"
	"github.com/vovakirdan/tui-replay/internal/viewer"
)

// Config contains all user-tunable viewer settings.
type Config struct {
	// FPS caps the render loop rate. The loop always runs at this cadence;
	// playback speed is controlled separately by the speed multiplier.
	FPS int `yaml:"fps"`

	// UIHeight is the height of the control band in log units.
	UIHeight int `yaml:"ui_height"`

	Theme ThemeConfig `yaml:"theme"`
}

// ThemeConfig names the colors for each viewer element. Empty fields keep
// the built-in default.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Band       string `yaml:"band"`
	Paddle     string `yaml:"paddle"`
	Ball       string `yaml:"ball"`
	ScrubFill  string `yaml:"scrub_fill"`
	PlayIdle   string `yaml:"play_idle"`
	PlayActive string `yaml:"play_active"`
	Text       string `yaml:"text"`
}

// normalize fills zero values with usable defaults.
func (c *Config) normalize() {
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.UIHeight <= 0 {
		c.UIHeight = viewer.DefaultUIHeight
	}
}

// BuildTheme resolves the color names into a viewer theme.
func (c Config) BuildTheme() viewer.Theme {
	th := viewer.DefaultTheme()
	apply := func(dst *core.Color, name string) {
		if name != "" {
			*dst = core.ParseColor(name)
		}
	}
	apply(&th.Background, c.Theme.Background)
	apply(&th.Band, c.Theme.Band)
	apply(&th.Paddle, c.Theme.Paddle)
	apply(&th.Ball, c.Theme.Ball)
	apply(&th.ScrubFill, c.Theme.ScrubFill)
	apply(&th.PlayIdle, c.Theme.PlayIdle)
	apply(&th.PlayActive, c.Theme.PlayActive)
	apply(&th.Text, c.Theme.Text)
	return th
}
