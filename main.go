package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/alexflint/go-arg"

	"axiscube/internal/config"
	"axiscube/internal/input"
	"axiscube/internal/raster"
	"axiscube/internal/render"
	"axiscube/internal/term"
)

func main() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()

	var cfg config.Config
	p := arg.MustParse(&cfg)
	if err := cfg.Validate(); err != nil {
		p.Fail(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg)
	stop()
	if err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	opts := cfg.RenderOptions()
	loop := render.NewLoop(opts, input.NewController(cfg.Axis))

	switch cfg.Backend {
	case config.BackendTerminal:
		t, err := term.Open(opts.Viewport)
		if err != nil {
			return err
		}
		// the screen owns the terminal until Close
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
		defer t.Close()
		return render.Run(ctx, t, loop, cfg.FPS)

	case config.BackendSnapshot:
		canvas, err := newCanvas(cfg)
		if err != nil {
			return err
		}
		d := &raster.Snapshot{
			Canvas: canvas,
			Axis:   cfg.Axis,
			Frames: cfg.Frames,
			Step:   cfg.Step,
			Out:    cfg.Out,
			Factor: cfg.Scale,
		}
		if err := render.Run(ctx, d, loop, 0); err != nil {
			return err
		}
		if loop.Mode() != input.Rendering {
			return fmt.Errorf("axis %q was not accepted", cfg.Axis)
		}
		log.Printf("wrote %s (angle %.3f rad)", cfg.Out, loop.Angle())
		return nil

	default:
		canvas, err := newCanvas(cfg)
		if err != nil {
			return err
		}
		w, err := openWindow(cfg.Width, cfg.Height, canvas)
		if err != nil {
			return err
		}
		defer w.close()
		return render.Run(ctx, w, loop, cfg.FPS)
	}
}

func newCanvas(cfg config.Config) (*raster.Canvas, error) {
	tf, err := raster.LoadTypeFace(cfg.Font, cfg.FontSize)
	if err != nil {
		return nil, err
	}
	return raster.NewCanvas(cfg.Width, cfg.Height, tf), nil
}
