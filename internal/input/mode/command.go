package mode

import (
	"unicode"

	"github.com/svanari/edi/internal/input/key"
)

// handleCommand dispatches a key in Command mode. The manager accumulates
// the line itself; only Enter produces an action the application must run.
func (m *Manager) handleCommand(ev key.Event) Action {
	switch ev.Key {
	case key.KeyEscape:
		m.kind = Normal
		m.cmdline = m.cmdline[:0]
		return Action{Op: OpCancelCommand}

	case key.KeyEnter:
		line := string(m.cmdline)
		m.kind = Normal
		m.cmdline = m.cmdline[:0]
		return Action{Op: OpExecuteCommand, Command: line}

	case key.KeyBackspace:
		if len(m.cmdline) == 0 {
			// Erasing past the colon abandons the command line.
			m.kind = Normal
			return Action{Op: OpCancelCommand}
		}
		m.cmdline = m.cmdline[:len(m.cmdline)-1]
		return none()
	}

	if ev.IsRune() && unicode.IsPrint(ev.Rune) {
		m.cmdline = append(m.cmdline, ev.Rune)
	}
	return none()
}
