package viewer

import (
	"fmt"

	"github.com/vovakirdan/tui-replay/internal/core"
	"github.com/vovakirdan/tui-replay/internal/match"
)

// Theme maps viewer elements to colors. Themes come from the viewer config;
// DefaultTheme mirrors the classic palette.
type Theme struct {
	Background core.Color
	Band       core.Color
	Paddle     core.Color
	Ball       core.Color
	ScrubFill  core.Color
	PlayIdle   core.Color // button fill while paused
	PlayActive core.Color // button fill while playing
	Text       core.Color
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	return Theme{
		Background: core.ColorBlack,
		Band:       core.ColorDarkGray,
		Paddle:     core.ColorWhite,
		Ball:       core.ColorWhite,
		ScrubFill:  core.ColorBlue,
		PlayIdle:   core.ColorRed,
		PlayActive: core.ColorGreen,
		Text:       core.ColorWhite,
	}
}

// Renderer turns one frame snapshot plus playback state into an ordered
// sequence of canvas draw calls. It holds only immutable per-match data and
// never mutates the session or the match.
type Renderer struct {
	cfg    match.Config
	tr     Transform
	layout Layout
	theme  Theme
}

// NewRenderer creates a renderer for a loaded match.
func NewRenderer(cfg match.Config, layout Layout, theme Theme) Renderer {
	return Renderer{
		cfg:    cfg,
		tr:     NewTransform(cfg),
		layout: layout,
		theme:  theme,
	}
}

// Frame emits the complete draw sequence for the current frame: court,
// paddles, ball, then the control band with button, speed label, scrub bar
// and tick counter.
func (r Renderer) Frame(c Canvas, f match.Frame, s *Session) {
	c.Clear(r.theme.Background)

	// Paddles (centre-y stored in the log)
	c.FillRect(r.tr.PaddleBox(0, f.P0Pos), r.theme.Paddle)
	c.FillRect(r.tr.PaddleBox(r.cfg.Width-r.cfg.PaddleWidth, f.P1Pos), r.theme.Paddle)

	// Ball
	c.FillCircle(r.tr.ToScreen(f.BallPos[0], f.BallPos[1]), r.cfg.BallRadius, r.theme.Ball)

	// Control band
	c.FillRect(r.layout.Band, r.theme.Band)
	r.drawPlayButton(c, s.Playing())

	btn := r.layout.PlayButton
	c.Text(core.Point{X: btn.Right() + 10, Y: btn.Y + 10}, fmt.Sprintf("x%d", s.Speed()), r.theme.Text)

	r.drawScrubBar(c, s)

	bar := r.layout.ScrubBar
	counter := fmt.Sprintf("%d/%d", f.Tick, s.Length()-1)
	c.TextRight(core.Point{X: bar.Right(), Y: bar.Y - 2}, counter, r.theme.Text)
}

// drawPlayButton draws the button fill and its glyph: two bars while
// playing (press to pause), a triangle while paused (press to play).
func (r Renderer) drawPlayButton(c Canvas, playing bool) {
	btn := r.layout.PlayButton
	if playing {
		c.FillRect(btn, r.theme.PlayActive)
		const barW, pad = 8, 8
		y := btn.Y + 8
		c.FillRect(core.NewRect(btn.X+pad, y, barW, 24), r.theme.Background)
		c.FillRect(core.NewRect(btn.X+pad+barW+4, y, barW, 24), r.theme.Background)
		return
	}
	c.FillRect(btn, r.theme.PlayIdle)
	c.FillPolygon([]core.Point{
		{X: btn.X + 10, Y: btn.Y + 8},
		{X: btn.X + 10, Y: btn.Y + 32},
		{X: btn.X + 30, Y: btn.Y + 20},
	}, r.theme.Background)
}

// drawScrubBar draws the bar outline and the played-portion fill.
func (r Renderer) drawScrubBar(c Canvas, s *Session) {
	bar := r.layout.ScrubBar
	c.StrokeRect(bar, r.theme.Text)

	filled := int(float64(bar.W) * s.Progress())
	if filled > 0 {
		c.FillRect(core.NewRect(bar.X, bar.Y, filled, bar.H), r.theme.ScrubFill)
	}
}
