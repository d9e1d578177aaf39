package viewer

import "github.com/vovakirdan/tui-replay/internal/core"

// Router translates raw input events into session commands and UI hit
// tests. It is independent of the backend event representation; the
// platform layer converts its native messages into core events first.
type Router struct {
	session *Session
	layout  Layout
}

// NewRouter creates a router driving the given session with the given
// UI geometry.
func NewRouter(s *Session, l Layout) *Router {
	return &Router{session: s, layout: l}
}

// Route applies one event to the session. It returns true when the event
// asks to quit; every unrecognized event is ignored without error.
func (r *Router) Route(ev core.Event) (quit bool) {
	switch ev := ev.(type) {
	case core.QuitEvent:
		return true

	case core.KeyDownEvent:
		return r.routeKey(ev.Key)

	case core.PointerDownEvent:
		if ev.Button == core.ButtonLeft {
			r.routePointer(ev.Pos)
		}

	case core.PointerMoveEvent:
		// Dragging with the left button held scrubs continuously.
		if ev.Buttons.Has(core.MaskLeft) && r.layout.ScrubBar.Contains(ev.Pos.X, ev.Pos.Y) {
			r.session.Scrub(r.layout.ScrubBar.Fraction(ev.Pos.X))
		}
	}
	return false
}

func (r *Router) routeKey(k core.Key) bool {
	switch k {
	case core.KeyQuit:
		return true
	case core.KeySpace:
		r.session.TogglePlay()
	case core.KeyRight, core.KeyPeriod, core.KeyEquals:
		r.session.SpeedUp()
	case core.KeyLeft, core.KeyComma, core.KeyMinus:
		r.session.SpeedDown()
	}
	return false
}

func (r *Router) routePointer(p core.Point) {
	switch {
	case r.layout.PlayButton.Contains(p.X, p.Y):
		r.session.TogglePlay()
	case r.layout.ScrubBar.Contains(p.X, p.Y):
		r.session.Scrub(r.layout.ScrubBar.Fraction(p.X))
	}
}
