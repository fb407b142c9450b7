package mode

import "github.com/svanari/edi/internal/input/key"

// Manager is the modal state machine. It owns the current mode plus the
// pending state that spans key presses: count digits, a pending operator,
// and the command line being typed.
type Manager struct {
	kind Kind

	// Normal mode pending state.
	count     int
	pendingOp rune

	// Command mode line, without the leading colon.
	cmdline []rune
}

// NewManager creates a manager in Normal mode.
func NewManager() *Manager {
	return &Manager{kind: Normal}
}

// Kind returns the current mode.
func (m *Manager) Kind() Kind {
	return m.kind
}

// CommandLine returns the command line typed so far, for display.
func (m *Manager) CommandLine() string {
	return string(m.cmdline)
}

// PendingCount returns the count typed so far, for display. Zero means no
// count is pending.
func (m *Manager) PendingCount() int {
	return m.count
}

// HandleKey dispatches one key event in the current mode and returns the
// action the application should take.
func (m *Manager) HandleKey(ev key.Event) Action {
	switch m.kind {
	case Insert:
		return m.handleInsert(ev)
	case Command:
		return m.handleCommand(ev)
	default:
		return m.handleNormal(ev)
	}
}

// takeCount consumes the pending count, defaulting to 1.
func (m *Manager) takeCount() int {
	n := m.count
	m.count = 0
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Manager) resetPending() {
	m.count = 0
	m.pendingOp = 0
}
