// Package mode implements the modal command dispatch. A Manager holds the
// current editing mode and turns key events into Actions; the application
// applies the actions to the buffer. Unrecognized keys are absorbed and
// produce no action.
package mode

// Kind identifies an editing mode.
type Kind uint8

const (
	Normal Kind = iota
	Insert
	Command
)

// String returns the mode name shown in the status line.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Command:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// Op identifies what an Action asks the application to do.
type Op uint8

const (
	// OpNone means the key was absorbed; nothing to do.
	OpNone Op = iota

	// OpMove moves the cursor by Motion, Count times.
	OpMove

	// OpEnterInsert switches to Insert mode.
	OpEnterInsert

	// OpExitInsert returns to Normal mode and seals the undo step.
	OpExitInsert

	// OpInsertRune inserts Rune at the cursor.
	OpInsertRune

	// OpInsertNewline inserts a line break at the cursor.
	OpInsertNewline

	// OpDeleteBackward removes the rune before the cursor.
	OpDeleteBackward

	// OpDeleteUnderCursor removes the rune under the cursor.
	OpDeleteUnderCursor

	// OpDeleteMotion removes the span the motion would cross, Count times.
	OpDeleteMotion

	// OpDeleteLine removes Count whole lines.
	OpDeleteLine

	// OpUndo reverses the last undo step.
	OpUndo

	// OpRedo re-applies the last undone step.
	OpRedo

	// OpExecuteCommand runs the ex command in Command.
	OpExecuteCommand

	// OpCancelCommand abandons the command line.
	OpCancelCommand
)

// Motion identifies a cursor motion.
type Motion uint8

const (
	MotionNone Motion = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionLineStart
	MotionFirstNonBlank
	MotionLineEnd
	MotionBufferEnd
	MotionWordForward
	MotionWordBackward
	MotionHalfScreenDown
	MotionHalfScreenUp
)

// Action is the result of dispatching one key event.
type Action struct {
	Op     Op
	Motion Motion
	Count  int
	Rune   rune

	// Command holds the ex command line for OpExecuteCommand.
	Command string
}

func none() Action {
	return Action{Op: OpNone}
}

func move(m Motion, count int) Action {
	return Action{Op: OpMove, Motion: m, Count: count}
}
