package term

import (
	"image"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"axiscube/internal/input"
	"axiscube/internal/projection"
	"axiscube/internal/render"
)

var vp = projection.Viewport{Width: 800, Height: 600}

func newSim(t *testing.T) (tcell.SimulationScreen, *Terminal) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(80, 24)
	term := New(s, vp)
	t.Cleanup(term.Close)
	return s, term
}

func row(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func cell(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestDrawText_ScalesToCells(t *testing.T) {
	s, term := newSim(t)
	term.Clear(render.Background)
	// (50,200) on an 800x600 viewport over 80x24 cells is cell (5,8)
	term.DrawText("axis", image.Pt(50, 200), render.Foreground)
	term.Present()
	if got := row(s, 8)[5:9]; got != "axis" {
		t.Fatalf("row 8 = %q", row(s, 8))
	}
}

func TestDrawPolygon(t *testing.T) {
	s, term := newSim(t)
	term.Clear(render.Background)
	term.DrawPolygon([]projection.Point{{X: 100, Y: 100}, {X: 300, Y: 100}, {X: 300, Y: 300}, {X: 100, Y: 300}}, render.Foreground)
	term.Present()
	// corners land on cells (10,4), (30,4), (30,12), (10,12)
	for _, p := range []image.Point{{10, 4}, {30, 4}, {30, 12}, {10, 12}, {20, 4}, {30, 8}} {
		if cell(s, p.X, p.Y) != lineRune {
			t.Errorf("cell %v = %q", p, cell(s, p.X, p.Y))
		}
	}
	if cell(s, 20, 8) != ' ' {
		t.Fatal("polygon interior filled")
	}
}

func TestDrawTextBox(t *testing.T) {
	s, term := newSim(t)
	term.Clear(render.Background)
	r := render.BoxRect(term.TextWidth("1,0,0"))
	term.DrawTextBox(r, "1,0,0", render.Foreground)
	term.Present()

	// box origin (250,300) is cell (25,12)
	if cell(s, 25, 12) != tcell.RuneULCorner {
		t.Fatalf("corner = %q", cell(s, 25, 12))
	}
	if got := string([]rune(row(s, 13))[26:31]); got != "1,0,0" {
		t.Fatalf("text row = %q", row(s, 13))
	}
	if cell(s, 25, 14) != tcell.RuneLLCorner {
		t.Fatalf("bottom corner = %q", cell(s, 25, 14))
	}
}

func TestTextWidth(t *testing.T) {
	_, term := newSim(t)
	if got := term.TextWidth("abc"); got != 30 {
		t.Fatalf("width = %d, want 30", got)
	}
}

func TestEvents(t *testing.T) {
	s, term := newSim(t)
	s.InjectKey(tcell.KeyRune, '1', tcell.ModNone)
	s.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	want := []input.Event{input.Rune('1'), input.Backspace, input.Enter, input.Quit}
	var got []input.Event
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < len(want) && time.Now().Before(deadline) {
		got = append(got, term.Events()...)
		time.Sleep(5 * time.Millisecond)
	}
	if len(got) != len(want) {
		t.Fatalf("events = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoopOnTerminal(t *testing.T) {
	s, term := newSim(t)
	l := render.NewLoop(render.Options{Viewport: vp, ZOffset: projection.DefaultZOffset}, input.NewController(""))

	l.Tick(0.1, nil, term)
	term.Present()
	if !strings.Contains(row(s, 8), "Enter the rotation axis") {
		t.Fatalf("prompt missing: %q", row(s, 8))
	}

	l.Tick(0.1, append(input.Type("0,1,0"), input.Enter), term)
	term.Present()
	if l.Mode() != input.Rendering {
		t.Fatalf("mode = %v", l.Mode())
	}
	if strings.Contains(row(s, 8), "Enter") {
		t.Fatal("prompt still shown while rendering")
	}
	if !strings.ContainsRune(row(s, 8)+row(s, 10)+row(s, 12), lineRune) {
		t.Fatal("cube not drawn")
	}
}
