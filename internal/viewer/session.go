package viewer

import (
	"math"

	"github.com/vovakirdan/tui-replay/internal/core"
)

// Speed multiplier bounds. Speed is always a power of two within these.
const (
	MinSpeed = 1
	MaxSpeed = 32
)

// Session is the playback state machine for one loaded match: the current
// frame index, the playing flag and the speed multiplier. All operations
// are total; out-of-range inputs are clamped, never rejected.
type Session struct {
	length  int // number of frames, at least 1
	index   int
	speed   int
	playing bool
}

// NewSession creates a session positioned at the first frame, paused, at
// normal speed.
func NewSession(length int) *Session {
	return &Session{
		length: core.Max(length, 1),
		speed:  MinSpeed,
	}
}

// Index returns the current frame index, always in [0, length-1].
func (s *Session) Index() int {
	return s.index
}

// Playing reports whether playback is running.
func (s *Session) Playing() bool {
	return s.playing
}

// Speed returns the current speed multiplier (ticks advanced per rendered
// frame while playing).
func (s *Session) Speed() int {
	return s.speed
}

// Length returns the number of frames in the session's match.
func (s *Session) Length() int {
	return s.length
}

// TogglePlay flips between playing and paused.
func (s *Session) TogglePlay() {
	s.playing = !s.playing
}

// Advance moves the index forward by the speed multiplier. Called once per
// rendered frame; it does nothing while paused. Reaching past the final
// frame clamps to it and pauses — playback never wraps.
func (s *Session) Advance() {
	if !s.playing {
		return
	}
	next := s.index + s.speed
	if next >= s.length {
		next = s.length - 1
		s.playing = false
	}
	s.index = next
}

// SpeedUp doubles the speed multiplier, saturating at MaxSpeed.
func (s *Session) SpeedUp() {
	s.speed = core.Min(s.speed*2, MaxSpeed)
}

// SpeedDown halves the speed multiplier, saturating at MinSpeed.
func (s *Session) SpeedDown() {
	s.speed = core.Max(s.speed/2, MinSpeed)
}

// Scrub repositions the index from a [0, 1] fraction along the scrub bar
// and pauses playback. The fraction is clamped, so scrubbing is total and
// idempotent.
func (s *Session) Scrub(frac float64) {
	frac = core.ClampF(frac, 0, 1)
	s.index = int(math.Round(frac * float64(s.length-1)))
	s.playing = false
}

// Progress returns the played fraction for the scrub-bar fill. A
// single-frame match always reports full progress; there is nothing left
// to play and the division would be undefined.
func (s *Session) Progress() float64 {
	if s.length <= 1 {
		return 1
	}
	return float64(s.index) / float64(s.length-1)
}
