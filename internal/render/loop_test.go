package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"axiscube/internal/cube"
	"axiscube/internal/input"
	"axiscube/internal/projection"
	"axiscube/internal/vecmath"
)

// recorder is a Surface that logs every draw call.
type recorder struct {
	calls    []string
	polygons [][]projection.Point
	boxes    []image.Rectangle
	texts    []string
}

func (r *recorder) Clear(color.Color) { r.calls = append(r.calls, "clear") }

func (r *recorder) DrawPolygon(pts []projection.Point, _ color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("polygon/%d", len(pts)))
	r.polygons = append(r.polygons, append([]projection.Point(nil), pts...))
}

func (r *recorder) DrawText(s string, at image.Point, _ color.Color) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, s)
}

func (r *recorder) DrawTextBox(rect image.Rectangle, text string, _ color.Color) {
	r.calls = append(r.calls, "box:"+text)
	r.boxes = append(r.boxes, rect)
}

// TextWidth pretends every rune is 10px wide.
func (r *recorder) TextWidth(s string) int { return 10 * len([]rune(s)) }

func (r *recorder) reset() { *r = recorder{} }

func typed(text string) []input.Event {
	return append(input.Type(text), input.Enter)
}

func newLoop(text string) *Loop {
	return NewLoop(DefaultOptions(), input.NewController(text))
}

func closePts(a, b projection.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestTick_PromptWhileAwaiting(t *testing.T) {
	l := newLoop("")
	s := &recorder{}
	if !l.Tick(0.016, input.Type("1,0"), s) {
		t.Fatal("loop stopped")
	}
	want := []string{"clear", "text", "text", "box:1,0"}
	if strings.Join(s.calls, " ") != strings.Join(want, " ") {
		t.Fatalf("calls = %v, want %v", s.calls, want)
	}
	if s.texts[0] != PromptLine1 || s.texts[1] != PromptLine2 {
		t.Fatalf("prompt = %q", s.texts)
	}
	if s.boxes[0] != image.Rect(250, 300, 450, 340) {
		t.Fatalf("box = %v", s.boxes[0])
	}
	if l.Angle() != 0 {
		t.Fatal("angle advanced while awaiting input")
	}
}

func TestTick_BoxGrowsWithText(t *testing.T) {
	l := newLoop(strings.Repeat("1", 25))
	s := &recorder{}
	l.Tick(0, nil, s)
	if got := s.boxes[0].Dx(); got != 260 {
		t.Fatalf("box width = %d, want 260", got)
	}
}

func TestTick_InvalidAxisShowsError(t *testing.T) {
	for _, text := range []string{"0,0,0", "abc", "1,2"} {
		t.Run(text, func(t *testing.T) {
			l := newLoop("")
			s := &recorder{}
			l.Tick(0.1, typed(text), s)
			l.Tick(0.1, nil, s)
			if l.Mode() != input.AwaitingInput {
				t.Fatalf("mode = %v", l.Mode())
			}
			if len(s.polygons) != 0 {
				t.Fatal("cube drawn for an invalid axis")
			}
			if len(s.texts) != 6 || !strings.Contains(s.texts[5], "invalid rotation axis") {
				t.Fatalf("texts = %q", s.texts)
			}
		})
	}
}

func TestTick_FaceOrder(t *testing.T) {
	l := newLoop("")
	s := &recorder{}
	l.Tick(0.3, typed("0,0,1"), s)
	if l.Mode() != input.Rendering {
		t.Fatalf("mode = %v", l.Mode())
	}
	if l.Angle() != 0 {
		t.Fatalf("first rendered frame should start at angle 0, got %g", l.Angle())
	}

	want := []string{"clear"}
	for i := 0; i < 6; i++ {
		want = append(want, "polygon/4")
	}
	if strings.Join(s.calls, " ") != strings.Join(want, " ") {
		t.Fatalf("calls = %v", s.calls)
	}

	verts := cube.Vertices()
	opts := DefaultOptions()
	for i, f := range cube.Faces() {
		q := f.Select(verts)
		expect := projection.Project(q[:], opts.ZOffset, opts.Viewport)
		for j := range expect {
			if !closePts(s.polygons[i][j], expect[j]) {
				t.Fatalf("polygon %d is not the %s face: %v", i, cube.FaceName(i), s.polygons[i])
			}
		}
	}
}

func TestTick_AccumulatesAngle(t *testing.T) {
	l := newLoop("0,1,0")
	s := &recorder{}
	l.Tick(1, []input.Event{input.Enter}, s)
	l.Tick(math.Pi/2, nil, s)
	s.reset()
	l.Tick(math.Pi/2, nil, s)
	if l.Angle() != math.Pi {
		t.Fatalf("angle = %g", l.Angle())
	}

	// half a turn about y maps (x, y, z) to (-x, y, -z)
	rotated := vecmath.RotationMatrix(l.Angle(), vecmath.Vec3{Y: 1}).MulRow(vecmath.Vec3{X: 1})
	if math.Abs(rotated.X+1) > 1e-12 || math.Abs(rotated.Y) > 1e-12 || math.Abs(rotated.Z) > 1e-12 {
		t.Fatalf("(1,0,0) rotated to %+v", rotated)
	}
	opts := DefaultOptions()
	want := projection.ProjectPoint(vecmath.Vec3{X: 1, Y: -1, Z: 1}, opts.ZOffset, opts.Viewport)
	if !closePts(s.polygons[0][0], want) {
		t.Fatalf("front face first corner at %+v, want %+v", s.polygons[0][0], want)
	}
}

func TestTick_IgnoresBadElapsed(t *testing.T) {
	l := newLoop("1,0,0")
	s := &recorder{}
	l.Tick(0, []input.Event{input.Enter}, s)
	for _, dt := range []float64{-1, math.NaN(), math.Inf(1)} {
		l.Tick(dt, nil, s)
	}
	if l.Angle() != 0 {
		t.Fatalf("angle = %g", l.Angle())
	}
}

func TestTick_Quit(t *testing.T) {
	l := newLoop("")
	s := &recorder{}
	if l.Tick(0.1, []input.Event{input.Rune('1'), input.Quit, input.Rune('2')}, s) {
		t.Fatal("loop kept running after quit")
	}
	if len(s.calls) != 0 {
		t.Fatalf("drew after quit: %v", s.calls)
	}
}

func TestBoxRect(t *testing.T) {
	if r := BoxRect(0); r.Dx() != 200 || r.Dy() != 40 || r.Min != image.Pt(250, 300) {
		t.Fatalf("BoxRect(0) = %v", r)
	}
	if r := BoxRect(300); r.Dx() != 310 {
		t.Fatalf("BoxRect(300) = %v", r)
	}
}
