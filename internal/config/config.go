// Package config holds the command line options.
package config

import (
	"errors"
	"fmt"

	"axiscube/internal/projection"
	"axiscube/internal/render"
)

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
	BackendSnapshot = "snapshot"
)

type Config struct {
	Backend  string  `arg:"-b, --backend" help:"display backend: window, terminal or snapshot" default:"window"`
	Width    int     `arg:"--width" help:"viewport width in pixels" default:"800"`
	Height   int     `arg:"--height" help:"viewport height in pixels" default:"600"`
	ZOffset  float64 `arg:"--z-offset" help:"depth added before the perspective divide" default:"5"`
	Axis     string  `arg:"-a, --axis" help:"pre-fill the axis prompt, e.g. 1,0,0"`
	Font     string  `arg:"--font" help:"TrueType font for the prompt (default Go Regular)"`
	FontSize float64 `arg:"--font-size" help:"prompt font size in points" default:"24"`
	FPS      int     `arg:"--fps" help:"frame rate cap, 0 for none" default:"60"`
	Frames   int     `arg:"--frames" help:"snapshot: frames to render" default:"30"`
	Step     float64 `arg:"--step" help:"snapshot: seconds between frames" default:"0.033"`
	Out      string  `arg:"-o, --out" help:"snapshot: PNG output path" default:"cube.png"`
	Scale    float64 `arg:"--scale" help:"snapshot: output image scale" default:"1.0"`
}

func (Config) Description() string {
	return "axiscube spins a wireframe cube about an axis typed at the prompt"
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	opts := render.DefaultOptions()
	return Config{
		Backend:  BackendWindow,
		Width:    opts.Viewport.Width,
		Height:   opts.Viewport.Height,
		ZOffset:  opts.ZOffset,
		FontSize: 24,
		FPS:      60,
		Frames:   30,
		Step:     0.033,
		Out:      "cube.png",
		Scale:    1,
	}
}

// Validate reports the first option that cannot be used.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	case BackendSnapshot:
		if c.Axis == "" {
			return errors.New("snapshot backend needs --axis")
		}
		if c.Frames < 1 {
			return fmt.Errorf("--frames must be positive, got %d", c.Frames)
		}
		if c.Step < 0 {
			return fmt.Errorf("--step must not be negative, got %g", c.Step)
		}
		if c.Scale <= 0 {
			return fmt.Errorf("--scale must be positive, got %g", c.Scale)
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.ZOffset <= 0 {
		return fmt.Errorf("--z-offset must be positive, got %g", c.ZOffset)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("--font-size must be positive, got %g", c.FontSize)
	}
	if c.FPS < 0 {
		return fmt.Errorf("--fps must not be negative, got %d", c.FPS)
	}
	return nil
}

// RenderOptions converts the viewport flags for render.NewLoop.
func (c Config) RenderOptions() render.Options {
	return render.Options{
		Viewport: projection.Viewport{Width: c.Width, Height: c.Height},
		ZOffset:  c.ZOffset,
	}
}
