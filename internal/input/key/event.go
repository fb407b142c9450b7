package key

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Event is a single key press.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewRuneEvent creates an event for a printable character.
func NewRuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k}
}

// NewCtrlEvent creates an event for Ctrl plus a letter.
func NewCtrlEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: ModCtrl}
}

// FromTcell translates a tcell key event.
func FromTcell(ev *tcell.EventKey) Event {
	mods := ModNone
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= ModAlt
	}

	if ev.Key() == tcell.KeyRune {
		return Event{Key: KeyRune, Rune: ev.Rune(), Modifiers: mods}
	}
	if ev.Key() == tcell.KeyBackspace2 {
		return Event{Key: KeyBackspace, Modifiers: mods}
	}

	// Enter, Tab, and Backspace share codes with Ctrl+M/I/H; the map
	// must win over the Ctrl+letter range below.
	if k, ok := tcellKeys[ev.Key()]; ok {
		return Event{Key: k, Modifiers: mods}
	}

	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := 'a' + rune(ev.Key()-tcell.KeyCtrlA)
		return Event{Key: KeyRune, Rune: r, Modifiers: mods | ModCtrl}
	}
	return Event{Key: KeyRune, Rune: ev.Rune(), Modifiers: mods}
}

// IsRune returns true for an unmodified printable character.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0 && e.Modifiers == ModNone
}

// IsCtrl returns true if the event is Ctrl plus the given letter.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Rune == r && e.Modifiers.HasCtrl()
}

// String returns a readable representation, e.g. "a", "C-d", "Esc".
func (e Event) String() string {
	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}

	name := e.Key.String()
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	}
	parts = append(parts, name)
	return strings.Join(parts, "-")
}
