package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"

	"axiscube/internal/input"
	"axiscube/internal/render"
)

// Scale resizes img by factor. A factor of 1 returns img unchanged.
func Scale(img image.Image, factor float64) image.Image {
	if factor == 1 {
		return img
	}
	b := img.Bounds()
	w := uint(float64(b.Dx()) * factor)
	h := uint(float64(b.Dy()) * factor)
	return resize.Resize(w, h, img, resize.Lanczos2)
}

// WritePNG encodes img, scaled by factor, to path.
func WritePNG(path string, img image.Image, factor float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, Scale(img, factor))
}

// Snapshot is a headless render.Driver. It types the axis on the first
// frame, advances a fixed step per frame and writes the last of Frames
// frames to Out.
type Snapshot struct {
	Canvas *Canvas
	Axis   string
	Frames int
	Step   float64
	Out    string
	Factor float64

	presented int
}

var _ render.Driver = (*Snapshot)(nil)

func (s *Snapshot) Events() []input.Event {
	switch {
	case s.presented >= s.Frames:
		return []input.Event{input.Quit}
	case s.presented == 0:
		return append(input.Type(s.Axis), input.Enter)
	}
	return nil
}

func (s *Snapshot) Elapsed() float64 {
	if s.presented == 0 {
		return 0
	}
	return s.Step
}

func (s *Snapshot) Surface() render.Surface { return s.Canvas }

func (s *Snapshot) Present() error {
	s.presented++
	if s.presented < s.Frames {
		return nil
	}
	if err := WritePNG(s.Out, s.Canvas.Img, s.Factor); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
