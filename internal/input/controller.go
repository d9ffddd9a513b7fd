// Package input implements the axis prompt: a small text box and the state
// machine that turns its committed text into a rotation axis.
package input

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"axiscube/internal/vecmath"
)

// ErrInvalidAxis marks text that cannot be used as a rotation axis.
var ErrInvalidAxis = errors.New("invalid rotation axis")

// Mode is the controller state.
type Mode int

const (
	AwaitingInput Mode = iota
	Rendering
)

func (m Mode) String() string {
	switch m {
	case AwaitingInput:
		return "awaiting-input"
	case Rendering:
		return "rendering"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseAxis reads three comma-separated numbers and returns them as a unit
// vector.
func ParseAxis(text string) (vecmath.Vec3, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return vecmath.Vec3{}, fmt.Errorf("%w: want 3 components, got %d", ErrInvalidAxis, len(parts))
	}
	var c [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vecmath.Vec3{}, fmt.Errorf("%w: component %d %q is not a number", ErrInvalidAxis, i+1, strings.TrimSpace(p))
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return vecmath.Vec3{}, fmt.Errorf("%w: component %d is not finite", ErrInvalidAxis, i+1)
		}
		c[i] = f
	}
	axis, err := vecmath.Normalize(vecmath.Vec3{X: c[0], Y: c[1], Z: c[2]})
	if err != nil {
		return vecmath.Vec3{}, fmt.Errorf("%w: %w", ErrInvalidAxis, err)
	}
	return axis, nil
}

// Controller gates rendering behind a successfully parsed axis. Once it
// reaches Rendering it never leaves.
type Controller struct {
	box     *TextBox
	mode    Mode
	axis    vecmath.Vec3
	pending *string
	err     error
}

// NewController starts in AwaitingInput with the box pre-filled with text.
func NewController(text string) *Controller {
	return &Controller{box: NewTextBox(text)}
}

// HandleEvent forwards a key press to the text box. On commit the box text
// is snapshotted for the next Update.
func (c *Controller) HandleEvent(ev Event) {
	if c.mode != AwaitingInput {
		return
	}
	if c.box.Handle(ev) {
		text := c.box.Text()
		c.pending = &text
	}
}

// Update parses a committed snapshot, if any. It reports whether the
// controller switched to Rendering. A rejected axis keeps the controller in
// AwaitingInput with the box focused again and the error kept for display.
func (c *Controller) Update() (entered bool) {
	if c.mode != AwaitingInput || c.pending == nil {
		return false
	}
	text := *c.pending
	c.pending = nil

	axis, err := ParseAxis(text)
	if err != nil {
		log.Printf("rejected axis %q: %v", text, err)
		c.err = err
		c.box.Focus()
		return false
	}
	log.Printf("rotating about axis (%.4g, %.4g, %.4g)", axis.X, axis.Y, axis.Z)
	c.axis = axis
	c.err = nil
	c.mode = Rendering
	return true
}

func (c *Controller) Mode() Mode { return c.mode }

// Axis returns the normalized axis. Only meaningful in Rendering.
func (c *Controller) Axis() vecmath.Vec3 { return c.axis }

// Err returns the last validation failure, nil if none.
func (c *Controller) Err() error { return c.err }

func (c *Controller) Box() *TextBox { return c.box }
