package viewer

import "github.com/vovakirdan/tui-replay/internal/core"

// Canvas is the capability interface the renderer draws through. All
// coordinates are frame space (origin top-left, y down, log-unit pixels);
// backends scale and rasterize as they see fit. The renderer only emits an
// ordered sequence of these calls and never inspects the result.
type Canvas interface {
	// Clear fills the whole frame with the given color.
	Clear(c core.Color)

	// FillRect fills a rectangle.
	FillRect(r core.Rect, c core.Color)

	// StrokeRect draws a rectangle outline.
	StrokeRect(r core.Rect, c core.Color)

	// FillCircle fills a circle given its centre and radius.
	FillCircle(centre core.Point, radius int, c core.Color)

	// FillPolygon fills a convex polygon.
	FillPolygon(pts []core.Point, c core.Color)

	// Text draws a string with its left edge at p.
	Text(p core.Point, s string, c core.Color)

	// TextRight draws a string with its right edge at p.
	TextRight(p core.Point, s string, c core.Color)
}
