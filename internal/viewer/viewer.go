package viewer

import (
	"fmt"

	"github.com/vovakirdan/tui-replay/internal/core"
	"github.com/vovakirdan/tui-replay/internal/match"
)

// Viewer owns one playback of one loaded match: the session state machine,
// the derived UI geometry and the renderer. One instance exists per
// process, constructed explicitly at startup and passed to the platform
// layer.
type Viewer struct {
	match    *match.Match
	session  *Session
	layout   Layout
	renderer Renderer
	router   *Router
}

// New creates a viewer for a loaded match. It fails if the match has no
// frames; that check runs before any window or terminal resource exists.
func New(m *match.Match, theme Theme, uiHeight int) (*Viewer, error) {
	if m == nil || m.Len() == 0 {
		return nil, fmt.Errorf("viewer: no playback data")
	}

	layout := NewLayout(m.Config, uiHeight)
	session := NewSession(m.Len())
	return &Viewer{
		match:    m,
		session:  session,
		layout:   layout,
		renderer: NewRenderer(m.Config, layout, theme),
		router:   NewRouter(session, layout),
	}, nil
}

// HandleEvent routes one raw input event. It returns true when the viewer
// should shut down.
func (v *Viewer) HandleEvent(ev core.Event) (quit bool) {
	return v.router.Route(ev)
}

// Tick advances playback by one loop iteration. Called exactly once per
// rendered frame, regardless of how many input events arrived.
func (v *Viewer) Tick() {
	v.session.Advance()
}

// Render emits the draw sequence for the current frame to the canvas.
func (v *Viewer) Render(c Canvas) {
	v.renderer.Frame(c, v.match.Frame(v.session.Index()), v.session)
}

// Session exposes the playback state machine, mainly for the platform
// layer's status reporting and for tests.
func (v *Viewer) Session() *Session {
	return v.session
}

// Layout returns the derived UI geometry.
func (v *Viewer) Layout() Layout {
	return v.layout
}

// Match returns the loaded match.
func (v *Viewer) Match() *match.Match {
	return v.match
}
