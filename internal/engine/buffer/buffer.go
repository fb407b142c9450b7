// Package buffer combines a rope, an edit history, and a cursor into a
// single editable document. All edits flow through the buffer so every
// change is recorded for undo.
package buffer

import (
	"io"

	"github.com/svanari/edi/internal/engine/cursor"
	"github.com/svanari/edi/internal/engine/history"
	"github.com/svanari/edi/internal/engine/rope"
)

// Buffer is an editable text document.
type Buffer struct {
	text rope.Rope
	hist *history.History
	cur  cursor.Cursor

	path     string
	modified bool
}

// Option configures a Buffer during creation.
type Option func(*options)

type options struct {
	content string
	path    string
	maxUndo int
}

// WithContent sets the initial text.
func WithContent(content string) Option {
	return func(o *options) { o.content = content }
}

// WithPath associates the buffer with a file path.
func WithPath(path string) Option {
	return func(o *options) { o.path = path }
}

// WithMaxUndo bounds the undo stack depth.
func WithMaxUndo(depth int) Option {
	return func(o *options) { o.maxUndo = depth }
}

// New creates a buffer.
func New(opts ...Option) *Buffer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Buffer{
		text: rope.FromString(o.content),
		hist: history.New(o.maxUndo),
		cur:  cursor.New(0),
		path: o.path,
	}
}

// NewFromReader creates a buffer with the contents of r.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	text, err := rope.FromReader(r)
	if err != nil {
		return nil, err
	}
	b := New(opts...)
	b.text = text
	return b, nil
}

// Rope returns the current text.
func (b *Buffer) Rope() rope.Rope {
	return b.text
}

// Cursor returns the current cursor.
func (b *Buffer) Cursor() cursor.Cursor {
	return b.cur
}

// Path returns the associated file path, or "" for a scratch buffer.
func (b *Buffer) Path() string {
	return b.path
}

// SetPath associates the buffer with a file path.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// Modified reports whether the buffer has unsaved changes.
func (b *Buffer) Modified() bool {
	return b.modified
}

// MarkSaved clears the modified flag after a successful write.
func (b *Buffer) MarkSaved() {
	b.modified = false
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	return b.text.Len()
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return b.text.LineCount()
}

// Position returns the cursor's line/column position.
func (b *Buffer) Position() rope.Position {
	return b.cur.Position(b.text)
}

// InsertText inserts text at the cursor and advances the cursor past it.
func (b *Buffer) InsertText(text string) {
	if text == "" {
		return
	}

	before := b.cur.Offset
	b.text = b.text.Insert(before, text)
	after := before + runeLen(text)
	b.cur = b.cur.MoveTo(after)
	b.modified = true

	b.hist.Push(history.EditRecord{
		Kind:         history.Insert,
		Offset:       before,
		Text:         text,
		CursorBefore: before,
		CursorAfter:  after,
	})
}

// DeleteBackward removes the rune before the cursor. No-op at the start
// of the buffer.
func (b *Buffer) DeleteBackward() {
	if b.cur.Offset == 0 {
		return
	}

	before := b.cur.Offset
	start := before - 1
	removed := b.text.Slice(start, before)
	b.text = b.text.Delete(start, before)
	b.cur = b.cur.MoveTo(start)
	b.modified = true

	b.hist.Push(history.EditRecord{
		Kind:         history.Delete,
		Offset:       start,
		Text:         removed,
		CursorBefore: before,
		CursorAfter:  start,
	})
}

// DeleteForward removes the rune under the cursor. Newlines are not
// deleted this way, and the end of the buffer is a no-op.
func (b *Buffer) DeleteForward() {
	ch, ok := b.text.RuneAt(b.cur.Offset)
	if !ok || ch == '\n' {
		return
	}

	at := b.cur.Offset
	removed := b.text.Slice(at, at+1)
	b.text = b.text.Delete(at, at+1)
	b.modified = true

	// Keep the cursor on the line when the last rune was deleted.
	pos := b.text.OffsetToPosition(at)
	end := b.text.LineEndOffset(pos.Line)
	if at >= end && end > b.text.LineStartOffset(pos.Line) {
		b.cur = b.cur.MoveTo(end - 1)
	} else {
		b.cur = b.cur.MoveTo(at)
	}

	b.hist.Push(history.EditRecord{
		Kind:         history.Delete,
		Offset:       at,
		Text:         removed,
		CursorBefore: at,
		CursorAfter:  b.cur.Offset,
	})
}

// DeleteRange removes the runes in [start, end) as a single undo step.
func (b *Buffer) DeleteRange(start, end int) {
	if start > end {
		start, end = end, start
	}
	removed := b.text.Slice(start, end)
	if removed == "" {
		return
	}

	before := b.cur.Offset
	b.text = b.text.Delete(start, end)
	b.cur = b.cur.MoveTo(start).Clamp(b.text.Len())
	b.modified = true

	b.hist.Break()
	b.hist.Push(history.EditRecord{
		Kind:         history.Delete,
		Offset:       start,
		Text:         removed,
		CursorBefore: before,
		CursorAfter:  b.cur.Offset,
	})
	b.hist.Break()
}

// Undo reverses the most recent undo step. Returns false when there is
// nothing to undo.
func (b *Buffer) Undo() bool {
	rec, ok := b.hist.Undo()
	if !ok {
		return false
	}

	switch rec.Kind {
	case history.Insert:
		b.text = b.text.Delete(rec.Offset, rec.End())
	case history.Delete:
		b.text = b.text.Insert(rec.Offset, rec.Text)
	}
	b.cur = b.cur.MoveTo(rec.CursorBefore).Clamp(b.text.Len())
	b.modified = true
	return true
}

// Redo re-applies the most recently undone step. Returns false when there
// is nothing to redo.
func (b *Buffer) Redo() bool {
	rec, ok := b.hist.Redo()
	if !ok {
		return false
	}

	switch rec.Kind {
	case history.Insert:
		b.text = b.text.Insert(rec.Offset, rec.Text)
	case history.Delete:
		b.text = b.text.Delete(rec.Offset, rec.End())
	}
	b.cur = b.cur.MoveTo(rec.CursorAfter).Clamp(b.text.Len())
	b.modified = true
	return true
}

// CanUndo reports whether an undo step is available.
func (b *Buffer) CanUndo() bool {
	return b.hist.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (b *Buffer) CanRedo() bool {
	return b.hist.CanRedo()
}

// CommitUndoBoundary seals the current undo step. Mode transitions and
// cursor jumps call this so later edits start a new step.
func (b *Buffer) CommitUndoBoundary() {
	b.hist.Break()
}

// MoveCursor applies a motion to the cursor. A move that changes the line
// seals the current undo step.
func (b *Buffer) MoveCursor(move func(rope.Rope, cursor.Cursor) cursor.Cursor) {
	beforeLine := b.cur.Position(b.text).Line
	b.cur = move(b.text, b.cur).Clamp(b.text.Len())
	if b.cur.Position(b.text).Line != beforeLine {
		b.hist.Break()
	}
}

// SetCursor places the cursor at the given offset, clamped to the buffer,
// and seals the current undo step.
func (b *Buffer) SetCursor(offset int) {
	b.cur = b.cur.MoveTo(offset).Clamp(b.text.Len())
	b.hist.Break()
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
