package raster

import (
	"fmt"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// TypeFace pairs a parsed font with a sized face for measuring.
type TypeFace struct {
	Font *truetype.Font
	Face font.Face
	Size float64
}

// LoadTypeFace parses the TrueType font at path. An empty path selects the
// embedded Go Regular font.
func LoadTypeFace(path string, size float64) (*TypeFace, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = b
	}
	f, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	return &TypeFace{Font: f, Face: face, Size: size}, nil
}

// Width returns the advance of s in whole pixels.
func (tf *TypeFace) Width(s string) int {
	return font.MeasureString(tf.Face, s).Ceil()
}

// Ascent is the distance from the top of a line to its baseline.
func (tf *TypeFace) Ascent() fixed.Int26_6 {
	return tf.Face.Metrics().Ascent
}
