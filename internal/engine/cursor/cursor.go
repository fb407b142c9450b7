// Package cursor provides the cursor value type and the motion functions
// that move it. Motions are pure: they take a rope and a cursor and return
// a new cursor, never touching the text.
package cursor

import (
	"fmt"

	"github.com/svanari/edi/internal/engine/rope"
)

// NoDesiredColumn marks a cursor with no remembered column. Horizontal
// motions reset to this; vertical motions set and preserve a real column.
const NoDesiredColumn = -1

// Cursor is an insertion point in a buffer. Cursor is an immutable value
// type: motions return a new cursor.
//
// DesiredCol remembers the column the user was aiming for across vertical
// moves, so moving down through a short line and back onto a long one
// restores the original column.
type Cursor struct {
	Offset     int
	DesiredCol int
}

// New creates a cursor at the given rune offset with no desired column.
func New(offset int) Cursor {
	if offset < 0 {
		offset = 0
	}
	return Cursor{Offset: offset, DesiredCol: NoDesiredColumn}
}

// MoveTo returns a cursor at the given offset. The desired column is
// dropped: an explicit jump abandons the remembered column.
func (c Cursor) MoveTo(offset int) Cursor {
	if offset < 0 {
		offset = 0
	}
	return Cursor{Offset: offset, DesiredCol: NoDesiredColumn}
}

// Clamp returns a cursor clamped to [0, max].
func (c Cursor) Clamp(max int) Cursor {
	if c.Offset < 0 {
		c.Offset = 0
	}
	if c.Offset > max {
		c.Offset = max
	}
	return c
}

// Position returns the cursor's line/column position in r.
func (c Cursor) Position(r rope.Rope) rope.Position {
	return r.OffsetToPosition(c.Offset)
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d)", c.Offset)
}
