// Package core provides fundamental types and utilities for the replay viewer.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// playback logic pure and testable.
package core

// Point is a position in frame coordinates (origin top-left, y down).
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned rectangle used for UI hit testing
// and fill regions.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Fraction returns how far x sits along the rectangle's width, in [0, 1].
// Values outside the rectangle are clamped to the edges.
func (r Rect) Fraction(x int) float64 {
	if r.W <= 0 {
		return 0
	}
	return ClampF(float64(x-r.X)/float64(r.W), 0, 1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
