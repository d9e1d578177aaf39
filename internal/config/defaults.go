package config

import (
	_ "embed"
)

//go:embed defaults/replay.yaml
var defaultReplayYAML []byte

// Default returns the built-in viewer configuration.
func Default() Config {
	return Config{
		FPS:      60,
		UIHeight: 60,
		Theme: ThemeConfig{
			Background: "black",
			Band:       "dark-gray",
			Paddle:     "white",
			Ball:       "white",
			ScrubFill:  "blue",
			PlayIdle:   "red",
			PlayActive: "green",
			Text:       "white",
		},
	}
}
