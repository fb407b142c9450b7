package mode

import "github.com/svanari/edi/internal/input/key"

// handleNormal dispatches a key in Normal mode.
func (m *Manager) handleNormal(ev key.Event) Action {
	// Ctrl chords first; they never combine with counts or operators.
	if ev.Modifiers.HasCtrl() {
		m.resetPending()
		switch {
		case ev.IsCtrl('d'):
			return move(MotionHalfScreenDown, 1)
		case ev.IsCtrl('u'):
			return move(MotionHalfScreenUp, 1)
		case ev.IsCtrl('r'):
			return Action{Op: OpRedo}
		}
		return none()
	}

	switch ev.Key {
	case key.KeyEscape:
		m.resetPending()
		return none()
	case key.KeyLeft:
		return m.motionOrDelete(MotionLeft)
	case key.KeyRight:
		return m.motionOrDelete(MotionRight)
	case key.KeyUp:
		return m.motionOrDelete(MotionUp)
	case key.KeyDown:
		return m.motionOrDelete(MotionDown)
	case key.KeyBackspace:
		m.resetPending()
		return Action{Op: OpDeleteBackward}
	case key.KeyDelete:
		m.resetPending()
		return Action{Op: OpDeleteUnderCursor}
	}

	if ev.Key != key.KeyRune {
		m.resetPending()
		return none()
	}

	r := ev.Rune

	// Count digits accumulate. A leading zero is the line-start motion.
	if r >= '1' && r <= '9' || (r == '0' && m.count > 0) {
		m.count = m.count*10 + int(r-'0')
		return none()
	}

	switch r {
	case 'h':
		return m.motionOrDelete(MotionLeft)
	case 'l':
		return m.motionOrDelete(MotionRight)
	case 'k':
		return m.motionOrDelete(MotionUp)
	case 'j':
		return m.motionOrDelete(MotionDown)
	case '0':
		return m.motionOrDelete(MotionLineStart)
	case '^':
		return m.motionOrDelete(MotionFirstNonBlank)
	case '$':
		return m.motionOrDelete(MotionLineEnd)
	case 'G':
		return m.motionOrDelete(MotionBufferEnd)
	case 'w':
		return m.motionOrDelete(MotionWordForward)
	case 'b':
		return m.motionOrDelete(MotionWordBackward)

	case 'd':
		if m.pendingOp == 'd' {
			m.pendingOp = 0
			return Action{Op: OpDeleteLine, Count: m.takeCount()}
		}
		m.pendingOp = 'd'
		return none()

	case 'x':
		m.resetPending()
		return Action{Op: OpDeleteUnderCursor}

	case 'i':
		m.resetPending()
		m.kind = Insert
		return Action{Op: OpEnterInsert}

	case 'u':
		m.resetPending()
		return Action{Op: OpUndo}

	case ':':
		m.resetPending()
		m.kind = Command
		m.cmdline = m.cmdline[:0]
		return none()
	}

	m.resetPending()
	return none()
}

// motionOrDelete resolves a motion key against the pending operator:
// plain motion when none is pending, a deletion over the motion's span
// when d is pending.
func (m *Manager) motionOrDelete(motion Motion) Action {
	count := m.takeCount()
	if m.pendingOp == 'd' {
		m.pendingOp = 0
		return Action{Op: OpDeleteMotion, Motion: motion, Count: count}
	}
	return move(motion, count)
}
