// Package match holds the in-memory model of one recorded match and the
// loader for the engine's log format.
//
// Log coordinate system:
//   - (0, 0) is the court centre
//   - +x right, -x left
//   - +y up, -y down
//   - P0Pos / P1Pos give the paddle centre y-coordinate in that system
//
// The viewer converts these Cartesian coordinates to frame space
// (origin top-left, +y down).
package match

import "fmt"

// Config is the fixed match configuration recorded as the first log record.
// All values are in log units.
type Config struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	PaddleWidth  int `json:"paddle_width"`
	PaddleLength int `json:"paddle_length"`
	BallRadius   int `json:"ball_radius"`
}

// Validate checks the invariants the viewer relies on.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("match: court dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.PaddleWidth <= 0 || c.PaddleLength <= 0 {
		return fmt.Errorf("match: paddle dimensions must be positive, got %dx%d", c.PaddleWidth, c.PaddleLength)
	}
	if c.PaddleLength > c.Height {
		return fmt.Errorf("match: paddle length %d exceeds court height %d", c.PaddleLength, c.Height)
	}
	if c.BallRadius <= 0 {
		return fmt.Errorf("match: ball radius must be positive, got %d", c.BallRadius)
	}
	return nil
}

// Frame is one per-tick state snapshot from the log.
type Frame struct {
	Tick    int        `json:"tick"`
	P0Pos   float64    `json:"p0_pos"`
	P1Pos   float64    `json:"p1_pos"`
	BallPos [2]float64 `json:"ball_pos"`
}

// Match is one fully loaded, immutable match log.
type Match struct {
	Config Config
	Frames []Frame
}

// Len returns the number of recorded frames. Always at least 1 for a
// loaded match.
func (m *Match) Len() int {
	return len(m.Frames)
}

// Frame returns the snapshot at the given index. The index is assumed to
// be in range; playback keeps it there.
func (m *Match) Frame(i int) Frame {
	return m.Frames[i]
}

// FirstTick returns the tick of the first recorded frame.
func (m *Match) FirstTick() int {
	return m.Frames[0].Tick
}

// LastTick returns the tick of the final recorded frame.
func (m *Match) LastTick() int {
	return m.Frames[len(m.Frames)-1].Tick
}

// validate checks the frame sequence invariants after loading.
func (m *Match) validate() error {
	if err := m.Config.Validate(); err != nil {
		return err
	}
	if len(m.Frames) == 0 {
		return fmt.Errorf("match: log contains no game states")
	}
	prev := -1
	for i, f := range m.Frames {
		if f.Tick < 0 {
			return fmt.Errorf("match: frame %d has negative tick %d", i, f.Tick)
		}
		if f.Tick <= prev {
			return fmt.Errorf("match: frame %d tick %d does not increase (previous %d)", i, f.Tick, prev)
		}
		prev = f.Tick
	}
	return nil
}
