package render

import (
	"image"
	"image/color"

	"axiscube/internal/projection"
)

var (
	Background = color.RGBA{0, 0, 0, 255}
	Foreground = color.RGBA{255, 255, 255, 255}
	ErrorColor = color.RGBA{255, 96, 96, 255}
)

// Surface is the set of draw primitives a display backend provides.
// Coordinates are viewport pixels with the origin top-left.
type Surface interface {
	Clear(c color.Color)
	// DrawPolygon strokes the closed outline through pts. Non-finite
	// points are the backend's to skip.
	DrawPolygon(pts []projection.Point, c color.Color)
	// DrawText draws s with its top-left corner at at.
	DrawText(s string, at image.Point, c color.Color)
	// DrawTextBox outlines r and draws text inset by the box padding.
	DrawTextBox(r image.Rectangle, text string, c color.Color)
	// TextWidth returns the rendered width of s in pixels.
	TextWidth(s string) int
}
