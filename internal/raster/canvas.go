// Package raster draws frames in software onto an *image.RGBA.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"github.com/golang/freetype"
	"golang.org/x/image/font"

	"axiscube/internal/projection"
	"axiscube/internal/render"
)

// boxStroke is the outline thickness of the text box.
const boxStroke = 2

// Canvas is a render.Surface backed by an RGBA image.
type Canvas struct {
	Img  *image.RGBA
	face *TypeFace
	ctx  *freetype.Context
}

var _ render.Surface = (*Canvas)(nil)

func NewCanvas(width, height int, tf *TypeFace) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(tf.Font)
	ctx.SetFontSize(tf.Size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetHinting(font.HintingFull)

	return &Canvas{Img: img, face: tf, ctx: ctx}
}

func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawPolygon strokes the closed outline through pts, one pixel wide.
func (c *Canvas) DrawPolygon(pts []projection.Point, col color.Color) {
	if len(pts) < 2 {
		return
	}
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		c.DrawLine(a.X, a.Y, b.X, b.Y, rgba)
	}
}

// DrawLine draws a line from (x1, y1) to (x2, y2) with a DDA walk. The
// segment is clipped to the image first, and dropped if an endpoint is not
// finite.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col color.RGBA) {
	b := c.Img.Bounds()
	x1, y1, x2, y2, ok := ClipSegment(x1, y1, x2, y2,
		float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X-1), float64(b.Max.Y-1))
	if !ok {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))

	var xInc, yInc float64
	if steps > 0 {
		xInc = dx / float64(steps)
		yInc = dy / float64(steps)
	}

	x, y := x1, y1
	for i := 0; i <= steps; i++ {
		ix := int(math.Round(x))
		iy := int(math.Round(y))
		if image.Pt(ix, iy).In(b) {
			offset := c.Img.PixOffset(ix, iy)
			c.Img.Pix[offset] = col.R
			c.Img.Pix[offset+1] = col.G
			c.Img.Pix[offset+2] = col.B
			c.Img.Pix[offset+3] = col.A
		}
		x += xInc
		y += yInc
	}
}

// DrawText draws s with its top-left corner at at.
func (c *Canvas) DrawText(s string, at image.Point, col color.Color) {
	c.ctx.SetSrc(image.NewUniform(col))
	pt := freetype.Pt(at.X, at.Y)
	pt.Y += c.face.Ascent()
	if _, err := c.ctx.DrawString(s, pt); err != nil {
		log.Printf("draw text %q: %v", s, err)
	}
}

func (c *Canvas) DrawTextBox(r image.Rectangle, text string, col color.Color) {
	c.DrawText(text, r.Min.Add(image.Pt(render.BoxPadding, render.BoxPadding)), col)

	u := image.NewUniform(col)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+boxStroke),
		image.Rect(r.Min.X, r.Max.Y-boxStroke, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+boxStroke, r.Max.Y),
		image.Rect(r.Max.X-boxStroke, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(c.Img, e.Intersect(c.Img.Bounds()), u, image.Point{}, draw.Src)
	}
}

func (c *Canvas) TextWidth(s string) int { return c.face.Width(s) }
