package viewer

import (
	"testing"

	"github.com/vovakirdan/tui-replay/internal/core"
)

func newTestRouter(length int) (*Router, *Session) {
	s := NewSession(length)
	l := NewLayout(testConfig, DefaultUIHeight)
	return NewRouter(s, l), s
}

func TestRouterQuitEvents(t *testing.T) {
	r, _ := newTestRouter(10)

	if !r.Route(core.QuitEvent{}) {
		t.Error("QuitEvent should request quit")
	}
	if !r.Route(core.KeyDownEvent{Key: core.KeyQuit}) {
		t.Error("KeyQuit should request quit")
	}
	if r.Route(core.KeyDownEvent{Key: core.KeySpace}) {
		t.Error("KeySpace should not request quit")
	}
}

func TestRouterKeys(t *testing.T) {
	t.Run("space toggles play", func(t *testing.T) {
		r, s := newTestRouter(10)
		r.Route(core.KeyDownEvent{Key: core.KeySpace})
		if !s.Playing() {
			t.Error("space should start playback")
		}
		r.Route(core.KeyDownEvent{Key: core.KeySpace})
		if s.Playing() {
			t.Error("space again should pause")
		}
	})

	t.Run("speed up keys", func(t *testing.T) {
		for _, k := range []core.Key{core.KeyRight, core.KeyPeriod, core.KeyEquals} {
			r, s := newTestRouter(10)
			r.Route(core.KeyDownEvent{Key: k})
			if s.Speed() != 2 {
				t.Errorf("%v: Speed() = %d, expected 2", k, s.Speed())
			}
		}
	})

	t.Run("speed down keys", func(t *testing.T) {
		for _, k := range []core.Key{core.KeyLeft, core.KeyComma, core.KeyMinus} {
			r, s := newTestRouter(10)
			s.SpeedUp()
			s.SpeedUp()
			r.Route(core.KeyDownEvent{Key: k})
			if s.Speed() != 2 {
				t.Errorf("%v: Speed() = %d, expected 2", k, s.Speed())
			}
		}
	})

	t.Run("unrecognized key ignored", func(t *testing.T) {
		r, s := newTestRouter(10)
		r.Route(core.KeyDownEvent{Key: core.KeyNone})
		if s.Playing() || s.Speed() != 1 || s.Index() != 0 {
			t.Error("unmapped key should not change state")
		}
	})
}

func TestRouterPlayButtonClick(t *testing.T) {
	r, s := newTestRouter(10)
	btn := r.layout.PlayButton

	r.Route(core.PointerDownEvent{Button: core.ButtonLeft, Pos: core.Point{X: btn.X + 1, Y: btn.Y + 1}})
	if !s.Playing() {
		t.Error("click inside the play button should toggle playback")
	}

	// Right button does nothing
	r.Route(core.PointerDownEvent{Button: core.ButtonRight, Pos: core.Point{X: btn.X + 1, Y: btn.Y + 1}})
	if !s.Playing() {
		t.Error("right click should be ignored")
	}

	// Click outside both controls does nothing
	r.Route(core.PointerDownEvent{Button: core.ButtonLeft, Pos: core.Point{X: 0, Y: 0}})
	if !s.Playing() {
		t.Error("click outside the controls should be ignored")
	}
}

func TestRouterScrubClick(t *testing.T) {
	r, s := newTestRouter(101)
	bar := r.layout.ScrubBar

	s.TogglePlay()
	mid := core.Point{X: bar.X + bar.W/2, Y: bar.Y + bar.H/2}
	r.Route(core.PointerDownEvent{Button: core.ButtonLeft, Pos: mid})

	if s.Index() != 50 {
		t.Errorf("click at bar midpoint set index %d, expected 50", s.Index())
	}
	if s.Playing() {
		t.Error("scrub click should pause playback")
	}
}

func TestRouterScrubDrag(t *testing.T) {
	r, s := newTestRouter(101)
	bar := r.layout.ScrubBar

	// Drag with left button held inside the bar scrubs on every sample
	r.Route(core.PointerMoveEvent{Buttons: core.MaskLeft, Pos: core.Point{X: bar.X, Y: bar.Y}})
	if s.Index() != 0 {
		t.Errorf("drag at bar start set index %d, expected 0", s.Index())
	}
	r.Route(core.PointerMoveEvent{Buttons: core.MaskLeft, Pos: core.Point{X: bar.Right() - 1, Y: bar.Y}})
	if s.Index() < 99 {
		t.Errorf("drag at bar end set index %d, expected near 100", s.Index())
	}

	// Motion without the button held is ignored
	before := s.Index()
	r.Route(core.PointerMoveEvent{Buttons: 0, Pos: core.Point{X: bar.X, Y: bar.Y}})
	if s.Index() != before {
		t.Error("motion without a held button should not scrub")
	}

	// Motion outside the bar is ignored even with the button held
	r.Route(core.PointerMoveEvent{Buttons: core.MaskLeft, Pos: core.Point{X: bar.X, Y: 0}})
	if s.Index() != before {
		t.Error("drag outside the bar should not scrub")
	}
}
