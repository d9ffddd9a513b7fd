package render

import (
	"context"
	"fmt"
	"time"

	"axiscube/internal/input"
)

// Driver is a display backend: it collects input, measures time and shows
// finished frames.
type Driver interface {
	// Events drains the input queued since the previous call.
	Events() []input.Event
	// Elapsed returns the seconds since the previous call.
	Elapsed() float64
	Surface() Surface
	// Present shows the frame drawn on Surface.
	Present() error
}

// Run ticks loop until a quit event, ctx cancellation or a driver error.
// A positive fps caps the frame rate.
func Run(ctx context.Context, d Driver, loop *Loop, fps int) error {
	var tick <-chan time.Time
	if fps > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if !loop.Tick(d.Elapsed(), d.Events(), d.Surface()) {
			return nil
		}
		if err := d.Present(); err != nil {
			return fmt.Errorf("present frame %d: %w", loop.Frames(), err)
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		}
	}
}
