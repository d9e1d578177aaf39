package viewer

import (
	"testing"

	"github.com/vovakirdan/tui-replay/internal/core"
	"github.com/vovakirdan/tui-replay/internal/match"
)

// drawOp records one canvas call for inspection.
type drawOp struct {
	kind   string
	rect   core.Rect
	pt     core.Point
	radius int
	pts    []core.Point
	text   string
	color  core.Color
}

// recorder is a Canvas that captures the emitted draw sequence.
type recorder struct {
	ops []drawOp
}

func (r *recorder) Clear(c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "clear", color: c})
}

func (r *recorder) FillRect(rect core.Rect, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "fillrect", rect: rect, color: c})
}

func (r *recorder) StrokeRect(rect core.Rect, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "strokerect", rect: rect, color: c})
}

func (r *recorder) FillCircle(centre core.Point, radius int, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "fillcircle", pt: centre, radius: radius, color: c})
}

func (r *recorder) FillPolygon(pts []core.Point, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "fillpolygon", pts: pts, color: c})
}

func (r *recorder) Text(p core.Point, s string, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "text", pt: p, text: s, color: c})
}

func (r *recorder) TextRight(p core.Point, s string, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "textright", pt: p, text: s, color: c})
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.ops))
	for i, op := range r.ops {
		out[i] = op.kind
	}
	return out
}

func (r *recorder) find(kind string) *drawOp {
	for i := range r.ops {
		if r.ops[i].kind == kind {
			return &r.ops[i]
		}
	}
	return nil
}

func testRenderer() Renderer {
	return NewRenderer(testConfig, NewLayout(testConfig, DefaultUIHeight), DefaultTheme())
}

func TestRenderPausedFrameSequence(t *testing.T) {
	r := testRenderer()
	s := NewSession(3)
	s.Scrub(0.5) // index 1, bar half filled

	rec := &recorder{}
	r.Frame(rec, match.Frame{Tick: 1, P0Pos: 0, P1Pos: 0, BallPos: [2]float64{0, 0}}, s)

	expected := []string{
		"clear",
		"fillrect",    // left paddle
		"fillrect",    // right paddle
		"fillcircle",  // ball
		"fillrect",    // UI band
		"fillrect",    // button fill
		"fillpolygon", // play triangle (paused)
		"text",        // speed label
		"strokerect",  // bar outline
		"fillrect",    // bar fill
		"textright",   // tick counter
	}

	got := rec.kinds()
	if len(got) != len(expected) {
		t.Fatalf("draw sequence %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("draw op %d = %s, expected %s (full: %v)", i, got[i], expected[i], got)
		}
	}
}

func TestRenderPlayingShowsPauseGlyph(t *testing.T) {
	r := testRenderer()
	s := NewSession(10)
	s.TogglePlay()

	rec := &recorder{}
	r.Frame(rec, match.Frame{}, s)

	if rec.find("fillpolygon") != nil {
		t.Error("playing frame should not draw the play triangle")
	}

	// Two glyph bars in the background color on top of the button fill
	theme := DefaultTheme()
	bars := 0
	for _, op := range rec.ops {
		if op.kind == "fillrect" && op.color == theme.Background {
			bars++
		}
	}
	if bars != 2 {
		t.Errorf("playing frame drew %d pause bars, expected 2", bars)
	}

	btn := rec.ops[5]
	if btn.color != theme.PlayActive {
		t.Errorf("button fill color = %d, expected PlayActive %d", btn.color, theme.PlayActive)
	}
}

func TestRenderBallAndPaddles(t *testing.T) {
	r := testRenderer()
	s := NewSession(1)

	rec := &recorder{}
	r.Frame(rec, match.Frame{Tick: 7, P0Pos: 100, P1Pos: -50, BallPos: [2]float64{20, 0}}, s)

	ball := rec.find("fillcircle")
	if ball == nil {
		t.Fatal("no ball drawn")
	}
	if ball.pt != (core.Point{X: 420, Y: 300}) || ball.radius != testConfig.BallRadius {
		t.Errorf("ball at %v r=%d, expected {420 300} r=%d", ball.pt, ball.radius, testConfig.BallRadius)
	}

	left := rec.ops[1].rect
	if left.X != 0 || left.Y != 300-100-40 {
		t.Errorf("left paddle rect = %+v, expected X=0 Y=160", left)
	}
	right := rec.ops[2].rect
	if right.X != testConfig.Width-testConfig.PaddleWidth || right.Y != 300+50-40 {
		t.Errorf("right paddle rect = %+v, expected X=790 Y=310", right)
	}
}

func TestRenderScrubFill(t *testing.T) {
	layout := NewLayout(testConfig, DefaultUIHeight)
	bar := layout.ScrubBar

	tests := []struct {
		name     string
		length   int
		frac     float64
		expected int
	}{
		{"start empty", 11, 0.0, 0},
		{"half", 11, 0.5, bar.W / 2},
		{"end full", 11, 1.0, bar.W},
		{"single frame always full", 1, 0.0, bar.W},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := testRenderer()
			s := NewSession(tc.length)
			s.Scrub(tc.frac)

			rec := &recorder{}
			r.Frame(rec, match.Frame{}, s)

			// The fill rect follows the bar outline; width 0 emits nothing.
			var fill *drawOp
			for i := range rec.ops {
				if rec.ops[i].kind == "strokerect" && i+1 < len(rec.ops) && rec.ops[i+1].kind == "fillrect" {
					fill = &rec.ops[i+1]
				}
			}

			if tc.expected == 0 {
				if fill != nil {
					t.Errorf("empty progress should not draw a fill, got %+v", fill.rect)
				}
				return
			}
			if fill == nil {
				t.Fatal("no scrub fill drawn")
			}
			if fill.rect.W != tc.expected {
				t.Errorf("fill width = %d, expected %d", fill.rect.W, tc.expected)
			}
			if fill.rect.X != bar.X || fill.rect.H != bar.H {
				t.Errorf("fill rect = %+v, expected anchored to bar %+v", fill.rect, bar)
			}
		})
	}
}

func TestRenderLabels(t *testing.T) {
	r := testRenderer()
	s := NewSession(42)
	s.SpeedUp()
	s.SpeedUp() // x4

	rec := &recorder{}
	r.Frame(rec, match.Frame{Tick: 17}, s)

	speed := rec.find("text")
	if speed == nil || speed.text != "x4" {
		t.Errorf("speed label = %+v, expected text \"x4\"", speed)
	}

	counter := rec.find("textright")
	if counter == nil || counter.text != "17/41" {
		t.Errorf("tick counter = %+v, expected text \"17/41\"", counter)
	}
}

func TestRenderDoesNotMutateSession(t *testing.T) {
	r := testRenderer()
	s := NewSession(10)
	s.TogglePlay()
	s.SpeedUp()
	s.Advance()

	idx, speed, playing := s.Index(), s.Speed(), s.Playing()
	r.Frame(&recorder{}, match.Frame{}, s)

	if s.Index() != idx || s.Speed() != speed || s.Playing() != playing {
		t.Error("rendering must not mutate playback state")
	}
}
