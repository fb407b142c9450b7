package mode

import (
	"unicode"

	"github.com/svanari/edi/internal/input/key"
)

// handleInsert dispatches a key in Insert mode.
func (m *Manager) handleInsert(ev key.Event) Action {
	switch ev.Key {
	case key.KeyEscape:
		m.kind = Normal
		return Action{Op: OpExitInsert}
	case key.KeyEnter:
		return Action{Op: OpInsertNewline}
	case key.KeyTab:
		return Action{Op: OpInsertRune, Rune: '\t'}
	case key.KeyBackspace:
		return Action{Op: OpDeleteBackward}
	case key.KeyDelete:
		return Action{Op: OpDeleteUnderCursor}
	case key.KeyLeft:
		return move(MotionLeft, 1)
	case key.KeyRight:
		return move(MotionRight, 1)
	case key.KeyUp:
		return move(MotionUp, 1)
	case key.KeyDown:
		return move(MotionDown, 1)
	}

	if ev.IsRune() && unicode.IsPrint(ev.Rune) {
		return Action{Op: OpInsertRune, Rune: ev.Rune}
	}
	return none()
}
