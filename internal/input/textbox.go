package input

import "unicode"

// TextBox holds the text typed while the axis prompt is up.
type TextBox struct {
	text   []rune
	active bool
}

// NewTextBox returns an active box pre-filled with text.
func NewTextBox(text string) *TextBox {
	return &TextBox{text: []rune(text), active: true}
}

// Handle applies one key press. It reports whether the key committed the
// text. Keys are ignored once the box has lost focus.
func (b *TextBox) Handle(ev Event) (committed bool) {
	if !b.active {
		return false
	}
	switch ev.Key {
	case KeyEnter:
		b.active = false
		return true
	case KeyBackspace:
		if len(b.text) > 0 {
			b.text = b.text[:len(b.text)-1]
		}
	case KeyRune:
		if unicode.IsPrint(ev.Rune) {
			b.text = append(b.text, ev.Rune)
		}
	}
	return false
}

func (b *TextBox) Text() string { return string(b.text) }

func (b *TextBox) Active() bool { return b.active }

// Focus gives the box focus again, keeping its text.
func (b *TextBox) Focus() { b.active = true }
