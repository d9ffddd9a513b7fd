// Package render drives the per-frame work: prompting for an axis, then
// rotating, projecting and stroking the cube faces.
package render

import (
	"math"

	"axiscube/internal/cube"
	"axiscube/internal/input"
	"axiscube/internal/projection"
	"axiscube/internal/vecmath"
)

type Options struct {
	Viewport projection.Viewport
	ZOffset  float64
}

// DefaultOptions returns the 800x600 viewport with the default depth offset.
func DefaultOptions() Options {
	return Options{
		Viewport: projection.Viewport{Width: 800, Height: 600},
		ZOffset:  projection.DefaultZOffset,
	}
}

// Loop owns all state mutated between frames.
type Loop struct {
	opts  Options
	ctrl  *input.Controller
	verts []vecmath.Vec3
	angle float64
	frame int
}

func NewLoop(opts Options, ctrl *input.Controller) *Loop {
	return &Loop{
		opts:  opts,
		ctrl:  ctrl,
		verts: cube.Vertices(),
	}
}

// Tick runs one frame. It returns false, without drawing, once a quit event
// is seen.
func (l *Loop) Tick(elapsed float64, events []input.Event, s Surface) bool {
	for _, ev := range events {
		if ev.Key == input.KeyQuit {
			return false
		}
		l.ctrl.HandleEvent(ev)
	}
	entered := l.ctrl.Update()

	s.Clear(Background)
	l.frame++

	if l.ctrl.Mode() != input.Rendering {
		l.drawPrompt(s)
		return true
	}
	if !entered && elapsed > 0 && !math.IsInf(elapsed, 0) {
		l.angle += elapsed
	}
	l.drawCube(s)
	return true
}

func (l *Loop) drawPrompt(s Surface) {
	s.DrawText(PromptLine1, promptPos1, Foreground)
	s.DrawText(PromptLine2, promptPos2, Foreground)
	if err := l.ctrl.Err(); err != nil {
		s.DrawText(err.Error(), errorPos, ErrorColor)
	}
	text := l.ctrl.Box().Text()
	s.DrawTextBox(BoxRect(s.TextWidth(text)), text, Foreground)
}

func (l *Loop) drawCube(s Surface) {
	m := vecmath.RotationMatrix(l.angle, l.ctrl.Axis())
	rotated := vecmath.ApplyRotation(m, l.verts)
	for _, f := range cube.Faces() {
		q := f.Select(rotated)
		s.DrawPolygon(projection.Project(q[:], l.opts.ZOffset, l.opts.Viewport), Foreground)
	}
}

// Angle returns the accumulated rotation in radians.
func (l *Loop) Angle() float64 { return l.angle }

func (l *Loop) Mode() input.Mode { return l.ctrl.Mode() }

// Frames returns the number of frames drawn so far.
func (l *Loop) Frames() int { return l.frame }

func (l *Loop) Options() Options { return l.opts }
