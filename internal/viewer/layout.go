package viewer

import (
	"github.com/vovakirdan/tui-replay/internal/core"
	"github.com/vovakirdan/tui-replay/internal/match"
)

// DefaultUIHeight is the height of the control band below the court,
// in log units.
const DefaultUIHeight = 60

// Layout holds all derived UI geometry for a match, in frame space.
// It is computed once from the match configuration right after load and is
// read-only afterwards.
type Layout struct {
	FrameW, FrameH int       // full frame including the UI band
	Court          core.Rect // playing area
	Band           core.Rect // UI band below the court
	PlayButton     core.Rect // play/pause toggle
	ScrubBar       core.Rect // seek bar
}

// NewLayout computes the UI geometry for a court of the configured size.
// uiHeight values below 1 fall back to DefaultUIHeight.
func NewLayout(cfg match.Config, uiHeight int) Layout {
	if uiHeight < 1 {
		uiHeight = DefaultUIHeight
	}
	w, h := cfg.Width, cfg.Height
	return Layout{
		FrameW:     w,
		FrameH:     h + uiHeight,
		Court:      core.NewRect(0, 0, w, h),
		Band:       core.NewRect(0, h, w, uiHeight),
		PlayButton: core.NewRect(10, h+10, 40, 40),
		ScrubBar:   core.NewRect(70, h+20, core.Max(w-80, 1), 20),
	}
}
