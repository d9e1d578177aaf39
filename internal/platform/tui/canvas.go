package tui

import (
	"github.com/vovakirdan/tui-replay/internal/core"
	"github.com/vovakirdan/tui-replay/internal/viewer"
)

// Rasterization characters.
const (
	fillChar  = '█'
	trackChar = '░'
	ballChar  = '●'
)

// cellCanvas rasterizes the renderer's pixel-space primitives into a
// character-cell screen buffer. The frame (court + UI band, in log units)
// is scaled to whatever terminal size is available; hit testing goes the
// other way through PixelPos.
type cellCanvas struct {
	screen *core.Screen
	frameW int
	frameH int
}

var _ viewer.Canvas = (*cellCanvas)(nil)

// newCellCanvas creates a canvas drawing a frame of the given pixel size
// into the screen buffer.
func newCellCanvas(screen *core.Screen, frameW, frameH int) *cellCanvas {
	return &cellCanvas{
		screen: screen,
		frameW: core.Max(frameW, 1),
		frameH: core.Max(frameH, 1),
	}
}

// scale returns cells-per-pixel factors for the current screen size.
func (c *cellCanvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / float64(c.frameW),
		float64(c.screen.Height()) / float64(c.frameH)
}

// cellPos maps a frame-space point to a cell position.
func (c *cellCanvas) cellPos(p core.Point) (int, int) {
	sx, sy := c.scale()
	return int(float64(p.X) * sx), int(float64(p.Y) * sy)
}

// cellRect maps a frame-space rectangle to a cell rectangle, keeping
// non-empty rects at least one cell big.
func (c *cellCanvas) cellRect(r core.Rect) core.Rect {
	sx, sy := c.scale()
	x0 := int(float64(r.X) * sx)
	y0 := int(float64(r.Y) * sy)
	x1 := int(float64(r.Right()) * sx)
	y1 := int(float64(r.Bottom()) * sy)
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// PixelPos maps a cell position back to frame space, for pointer events.
func (c *cellCanvas) PixelPos(cellX, cellY int) core.Point {
	sx, sy := c.scale()
	return core.Point{
		X: int((float64(cellX) + 0.5) / sx),
		Y: int((float64(cellY) + 0.5) / sy),
	}
}

func (c *cellCanvas) Clear(col core.Color) {
	c.screen.Fill(' ', col)
}

func (c *cellCanvas) FillRect(r core.Rect, col core.Color) {
	c.screen.DrawRect(c.cellRect(r), fillChar, col)
}

func (c *cellCanvas) StrokeRect(r core.Rect, col core.Color) {
	cr := c.cellRect(r)
	// Thin bars collapse to a single row or column of cells; a box outline
	// would be all corners, so draw a track instead.
	if cr.W < 3 || cr.H < 3 {
		c.screen.DrawRect(cr, trackChar, col)
		return
	}
	c.screen.DrawBox(cr, col)
}

func (c *cellCanvas) FillCircle(centre core.Point, radius int, col core.Color) {
	sx, sy := c.scale()
	bounds := c.cellRect(core.NewRect(centre.X-radius, centre.Y-radius, radius*2, radius*2))

	drawn := false
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			// Test the cell centre against the circle in pixel space
			px := (float64(x) + 0.5) / sx
			py := (float64(y) + 0.5) / sy
			dx := px - float64(centre.X)
			dy := py - float64(centre.Y)
			if dx*dx+dy*dy <= float64(radius*radius) {
				c.screen.Set(x, y, fillChar, col)
				drawn = true
			}
		}
	}
	// A ball smaller than one cell still has to be visible
	if !drawn {
		cx, cy := c.cellPos(centre)
		c.screen.Set(cx, cy, ballChar, col)
	}
}

func (c *cellCanvas) FillPolygon(pts []core.Point, col core.Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = core.Min(minX, p.X), core.Max(maxX, p.X)
		minY, maxY = core.Min(minY, p.Y), core.Max(maxY, p.Y)
	}

	sx, sy := c.scale()
	bounds := c.cellRect(core.NewRect(minX, minY, maxX-minX, maxY-minY))

	drawn := false
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			px := (float64(x) + 0.5) / sx
			py := (float64(y) + 0.5) / sy
			if pointInConvexPolygon(px, py, pts) {
				c.screen.Set(x, y, fillChar, col)
				drawn = true
			}
		}
	}
	if !drawn {
		// Degenerate at this scale; mark the first vertex
		cx, cy := c.cellPos(pts[0])
		c.screen.Set(cx, cy, fillChar, col)
	}
}

func (c *cellCanvas) Text(p core.Point, s string, col core.Color) {
	x, y := c.cellPos(p)
	c.screen.DrawText(x, y, s, col)
}

func (c *cellCanvas) TextRight(p core.Point, s string, col core.Color) {
	x, y := c.cellPos(p)
	c.screen.DrawText(x-len(s), y, s, col)
}

// pointInConvexPolygon tests a pixel against a convex polygon using
// consistent cross-product signs along the edges.
func pointInConvexPolygon(px, py float64, pts []core.Point) bool {
	sign := 0
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		cross := (float64(b.X)-float64(a.X))*(py-float64(a.Y)) - (float64(b.Y)-float64(a.Y))*(px-float64(a.X))
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}
