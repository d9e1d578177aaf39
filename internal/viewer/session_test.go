package viewer

import (
	"math"
	"testing"
)

func TestSessionInitialState(t *testing.T) {
	s := NewSession(100)

	if s.Index() != 0 {
		t.Errorf("Index() = %d, expected 0", s.Index())
	}
	if s.Playing() {
		t.Error("new session should be paused")
	}
	if s.Speed() != 1 {
		t.Errorf("Speed() = %d, expected 1", s.Speed())
	}
}

func TestSessionScrub(t *testing.T) {
	const length = 101

	tests := []struct {
		name     string
		frac     float64
		expected int
	}{
		{"start", 0.0, 0},
		{"end", 1.0, 100},
		{"midpoint", 0.5, 50},
		{"rounds up", 0.995, 100},
		{"rounds down", 0.004, 0},
		{"below range clamps", -0.5, 0},
		{"above range clamps", 1.5, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(length)
			s.TogglePlay() // scrubbing must pause from any prior state

			s.Scrub(tc.frac)

			if s.Index() != tc.expected {
				t.Errorf("Scrub(%f) index = %d, expected %d", tc.frac, s.Index(), tc.expected)
			}
			if s.Playing() {
				t.Error("Scrub() should pause playback")
			}

			// Idempotent: same fraction, same index
			s.Scrub(tc.frac)
			if s.Index() != tc.expected {
				t.Errorf("repeated Scrub(%f) index = %d, expected %d", tc.frac, s.Index(), tc.expected)
			}
		})
	}
}

func TestSessionScrubMatchesRounding(t *testing.T) {
	const length = 37
	s := NewSession(length)

	for f := 0.0; f <= 1.0; f += 0.01 {
		s.Scrub(f)
		expected := int(math.Round(f * float64(length-1)))
		if s.Index() != expected {
			t.Fatalf("Scrub(%f) index = %d, expected %d", f, s.Index(), expected)
		}
	}
}

func TestSessionAdvanceStopsAtEnd(t *testing.T) {
	s := NewSession(5)
	s.TogglePlay()

	indices := []int{}
	for i := 0; i < 10; i++ {
		s.Advance()
		indices = append(indices, s.Index())
		if s.Index() >= s.Length() {
			t.Fatalf("Advance() produced out-of-range index %d", s.Index())
		}
	}

	// Monotonically increases to length-1, then stays
	for i := 1; i < len(indices); i++ {
		if indices[i] < indices[i-1] {
			t.Fatalf("index decreased: %v", indices)
		}
	}
	if s.Index() != 4 {
		t.Errorf("final index = %d, expected 4", s.Index())
	}
	if s.Playing() {
		t.Error("reaching the last frame should pause playback")
	}

	// Further advances while paused are no-ops
	s.Advance()
	if s.Index() != 4 {
		t.Errorf("Advance() while paused moved index to %d", s.Index())
	}
}

func TestSessionAdvanceIgnoredWhilePaused(t *testing.T) {
	s := NewSession(10)
	s.Advance()
	if s.Index() != 0 {
		t.Errorf("Advance() while paused moved index to %d", s.Index())
	}
}

func TestSessionSpeedSaturation(t *testing.T) {
	s := NewSession(10)

	for i := 0; i < 8; i++ {
		s.SpeedUp()
	}
	if s.Speed() != 32 {
		t.Errorf("Speed() after 8 SpeedUp = %d, expected 32", s.Speed())
	}

	for i := 0; i < 10; i++ {
		s.SpeedDown()
	}
	if s.Speed() != 1 {
		t.Errorf("Speed() after repeated SpeedDown = %d, expected 1", s.Speed())
	}

	// Speed changes touch neither index nor play state
	if s.Index() != 0 || s.Playing() {
		t.Error("speed changes should not affect index or play state")
	}
}

func TestSessionSpeedStaysPowerOfTwo(t *testing.T) {
	s := NewSession(10)
	valid := map[int]bool{1: true, 2: true, 4: true, 8: true, 16: true, 32: true}

	for i := 0; i < 12; i++ {
		s.SpeedUp()
		if !valid[s.Speed()] {
			t.Fatalf("Speed() = %d, not a power of two in [1, 32]", s.Speed())
		}
	}
	for i := 0; i < 12; i++ {
		s.SpeedDown()
		if !valid[s.Speed()] {
			t.Fatalf("Speed() = %d, not a power of two in [1, 32]", s.Speed())
		}
	}
}

func TestSessionScrubToEndThenAdvance(t *testing.T) {
	// Three-frame match: scrub to the end, force playing, one advance is a
	// positional no-op and flips playing off.
	s := NewSession(3)

	s.Scrub(1.0)
	if s.Index() != 2 {
		t.Fatalf("Scrub(1.0) index = %d, expected 2", s.Index())
	}
	if s.Playing() {
		t.Fatal("Scrub() should leave the session paused")
	}

	s.TogglePlay()
	s.Advance()
	if s.Index() != 2 {
		t.Errorf("Advance() at last index moved to %d", s.Index())
	}
	if s.Playing() {
		t.Error("Advance() from the last index should pause")
	}
}

func TestSessionFastPlaybackClampsAndPauses(t *testing.T) {
	// Ten-frame match at speed 4: 0 -> 4 -> 8 -> 9 (clamped, paused).
	s := NewSession(10)
	s.SpeedUp()
	s.SpeedUp()
	s.TogglePlay()

	s.Advance()
	if s.Index() != 4 {
		t.Fatalf("first Advance() index = %d, expected 4", s.Index())
	}
	s.Advance()
	if s.Index() != 8 {
		t.Fatalf("second Advance() index = %d, expected 8", s.Index())
	}
	s.Advance()
	if s.Index() != 9 {
		t.Fatalf("third Advance() index = %d, expected 9", s.Index())
	}
	if s.Playing() {
		t.Error("overflowing past the last frame should pause")
	}
}

func TestSessionProgress(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		index    float64 // scrub fraction to apply
		expected float64
	}{
		{"start of long match", 11, 0.0, 0.0},
		{"middle of long match", 11, 0.5, 0.5},
		{"end of long match", 11, 1.0, 1.0},
		{"single frame is always full", 1, 0.0, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(tc.length)
			s.Scrub(tc.index)
			if got := s.Progress(); got != tc.expected {
				t.Errorf("Progress() = %f, expected %f", got, tc.expected)
			}
		})
	}
}
