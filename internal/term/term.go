// Package term shows frames on a terminal through tcell. The viewport is
// scaled down to the cell grid; text keeps one cell per rune.
package term

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"axiscube/internal/input"
	"axiscube/internal/projection"
	"axiscube/internal/raster"
	"axiscube/internal/render"
)

const lineRune = '#'

// Terminal is both the render.Driver and the render.Surface for a tcell
// screen.
type Terminal struct {
	screen tcell.Screen
	vp     projection.Viewport
	bg     tcell.Style

	events chan input.Event
	done   chan struct{}
	last   time.Time
}

var (
	_ render.Driver  = (*Terminal)(nil)
	_ render.Surface = (*Terminal)(nil)
)

// Open initialises the controlling terminal.
func Open(vp projection.Viewport) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("screen start failed: %w", err)
	}
	return New(s, vp), nil
}

// New wraps an initialised screen and starts polling it for key presses.
func New(s tcell.Screen, vp projection.Viewport) *Terminal {
	t := &Terminal{
		screen: s,
		vp:     vp,
		bg:     tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		events: make(chan input.Event, 64),
		done:   make(chan struct{}),
		last:   time.Now(),
	}
	go t.poll()
	return t
}

// Close stops polling and restores the terminal.
func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}

func (t *Terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		var out input.Event
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				out = input.Quit
			case tcell.KeyEnter:
				out = input.Enter
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				out = input.Backspace
			case tcell.KeyRune:
				out = input.Rune(ev.Rune())
			default:
				continue
			}
		case *tcell.EventResize:
			t.screen.Sync()
			continue
		default:
			continue
		}
		select {
		case t.events <- out:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) Events() []input.Event {
	var evs []input.Event
	for {
		select {
		case ev := <-t.events:
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}

func (t *Terminal) Elapsed() float64 {
	now := time.Now()
	dt := now.Sub(t.last).Seconds()
	t.last = now
	return dt
}

func (t *Terminal) Surface() render.Surface { return t }

func (t *Terminal) Present() error {
	t.screen.Show()
	return nil
}

// cellSize returns the viewport pixels covered by one cell.
func (t *Terminal) cellSize() (w, h float64) {
	cols, rows := t.screen.Size()
	if cols < 1 || rows < 1 {
		return 0, 0
	}
	return float64(t.vp.Width) / float64(cols), float64(t.vp.Height) / float64(rows)
}

func (t *Terminal) toCell(x, y float64) (float64, float64) {
	cw, ch := t.cellSize()
	if cw == 0 {
		return 0, 0
	}
	return x / cw, y / ch
}

func (t *Terminal) style(c color.Color) tcell.Style {
	r, g, b, _ := c.RGBA()
	return t.bg.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
}

func (t *Terminal) Clear(c color.Color) {
	r, g, b, _ := c.RGBA()
	t.bg = t.bg.Background(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
	t.screen.Fill(' ', t.bg)
}

func (t *Terminal) DrawPolygon(pts []projection.Point, c color.Color) {
	if len(pts) < 2 {
		return
	}
	st := t.style(c)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		t.drawLine(a, b, st)
	}
}

func (t *Terminal) drawLine(a, b projection.Point, st tcell.Style) {
	cols, rows := t.screen.Size()
	x1, y1 := t.toCell(a.X, a.Y)
	x2, y2 := t.toCell(b.X, b.Y)
	x1, y1, x2, y2, ok := raster.ClipSegment(x1, y1, x2, y2, 0, 0, float64(cols-1), float64(rows-1))
	if !ok {
		return
	}
	steps := int(math.Ceil(math.Max(math.Abs(x2-x1), math.Abs(y2-y1))))
	for i := 0; i <= steps; i++ {
		f := 0.0
		if steps > 0 {
			f = float64(i) / float64(steps)
		}
		x := int(math.Round(x1 + f*(x2-x1)))
		y := int(math.Round(y1 + f*(y2-y1)))
		t.screen.SetContent(x, y, lineRune, nil, st)
	}
}

func (t *Terminal) DrawText(s string, at image.Point, c color.Color) {
	x, y := t.toCell(float64(at.X), float64(at.Y))
	t.putString(int(x), int(y), s, t.style(c))
}

func (t *Terminal) putString(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, st)
	}
}

// DrawTextBox frames the text with line-drawing runes. The box is at least
// three rows tall so the text row fits inside.
func (t *Terminal) DrawTextBox(r image.Rectangle, text string, c color.Color) {
	st := t.style(c)
	fx0, fy0 := t.toCell(float64(r.Min.X), float64(r.Min.Y))
	fx1, fy1 := t.toCell(float64(r.Max.X), float64(r.Max.Y))
	x0, y0 := int(fx0), int(fy0)
	x1, y1 := max(int(fx1), x0+len([]rune(text))+1), max(int(fy1), y0+2)

	for x := x0 + 1; x < x1; x++ {
		t.screen.SetContent(x, y0, tcell.RuneHLine, nil, st)
		t.screen.SetContent(x, y1, tcell.RuneHLine, nil, st)
	}
	for y := y0 + 1; y < y1; y++ {
		t.screen.SetContent(x0, y, tcell.RuneVLine, nil, st)
		t.screen.SetContent(x1, y, tcell.RuneVLine, nil, st)
	}
	t.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, st)
	t.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, st)
	t.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, st)
	t.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, st)

	t.putString(x0+1, y0+1, text, st)
}

// TextWidth is the viewport width of s at one cell per rune.
func (t *Terminal) TextWidth(s string) int {
	cw, _ := t.cellSize()
	return int(math.Ceil(cw * float64(len([]rune(s)))))
}
