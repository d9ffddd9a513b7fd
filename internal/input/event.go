package input

// Key identifies the kind of an input event.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyBackspace
	KeyQuit
)

// Event is a single key press (or the quit signal) delivered by a driver.
type Event struct {
	Key  Key
	Rune rune
}

func Rune(r rune) Event { return Event{Key: KeyRune, Rune: r} }

// Type turns s into one rune event per character.
func Type(s string) []Event {
	evs := make([]Event, 0, len(s))
	for _, r := range s {
		evs = append(evs, Rune(r))
	}
	return evs
}

var (
	Enter     = Event{Key: KeyEnter}
	Backspace = Event{Key: KeyBackspace}
	Quit      = Event{Key: KeyQuit}
)
