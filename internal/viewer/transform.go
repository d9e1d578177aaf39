// Package viewer implements playback of a recorded match: the coordinate
// transform from log space to frame space, the play/pause/speed/scrub state
// machine, the input router and the frame renderer. It draws through the
// Canvas interface and never touches a concrete backend.
package viewer

import (
	"github.com/vovakirdan/tui-replay/internal/core"
	"github.com/vovakirdan/tui-replay/internal/match"
)

// Transform converts the log's centre-origin, y-up coordinates into frame
// space (origin top-left, y down). It is a pure function of the match
// configuration.
type Transform struct {
	cx, cy  int // court centre in frame space
	paddleW int
	paddleL int
}

// NewTransform builds the transform for a match configuration.
func NewTransform(cfg match.Config) Transform {
	return Transform{
		cx:      cfg.Width / 2,
		cy:      cfg.Height / 2,
		paddleW: cfg.PaddleWidth,
		paddleL: cfg.PaddleLength,
	}
}

// ToScreen converts Cartesian centre-based log coordinates to a frame-space
// point, truncated to integers.
func (t Transform) ToScreen(x, y float64) core.Point {
	return core.Point{
		X: int(float64(t.cx) + x),
		Y: int(float64(t.cy) - y),
	}
}

// PaddleBox returns the frame-space rectangle for a paddle given its left
// edge x and its centre-y in log units. The log stores the paddle centre but
// rendering needs a top-left anchored box; this is the single place that
// performs that re-anchoring.
func (t Transform) PaddleBox(xLeft int, centreY float64) core.Rect {
	top := float64(t.cy) - centreY - float64(t.paddleL/2)
	return core.NewRect(xLeft, int(top), t.paddleW, t.paddleL)
}
