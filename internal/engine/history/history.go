// Package history tracks undoable edits for a buffer.
//
// History owns the undo and redo stacks of edit records. It never touches
// the text itself: the buffer records edits here after mutating the rope,
// and applies the records History hands back on undo/redo.
package history

// Kind identifies the type of an edit.
type Kind uint8

const (
	// Insert is an insertion of Text at Offset.
	Insert Kind = iota

	// Delete is a removal of Text that started at Offset.
	Delete
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// EditRecord is one reversible edit. For insertions Text is the inserted
// text; for deletions it is the removed text, so the record is invertible.
type EditRecord struct {
	Kind   Kind
	Offset int
	Text   string

	// CursorBefore and CursorAfter are the cursor offsets around the
	// edit, restored on undo and redo respectively.
	CursorBefore int
	CursorAfter  int
}

// Len returns the rune length of the record's text.
func (r EditRecord) Len() int {
	n := 0
	for range r.Text {
		n++
	}
	return n
}

// End returns the offset just past the record's span.
func (r EditRecord) End() int {
	return r.Offset + r.Len()
}

// DefaultMaxDepth bounds the undo stack when no depth is configured.
const DefaultMaxDepth = 1000

// History holds the undo and redo stacks for one buffer.
type History struct {
	undo []EditRecord
	redo []EditRecord

	// sealed is set by Break; the next push will not coalesce.
	sealed bool

	maxDepth int
}

// New creates a history with the given maximum undo depth.
// Depths <= 0 fall back to DefaultMaxDepth.
func New(maxDepth int) *History {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &History{maxDepth: maxDepth}
}

// Push records an edit and clears the redo stack. Consecutive records of
// the same kind with contiguous spans coalesce into a single record unless
// Break was called since the previous push.
func (h *History) Push(rec EditRecord) {
	h.redo = h.redo[:0]

	if !h.sealed && len(h.undo) > 0 {
		top := &h.undo[len(h.undo)-1]
		if merged, ok := coalesce(*top, rec); ok {
			*top = merged
			return
		}
	}
	h.sealed = false

	h.undo = append(h.undo, rec)
	if len(h.undo) > h.maxDepth {
		h.undo = h.undo[len(h.undo)-h.maxDepth:]
	}
}

// coalesce merges rec into top when they form one continuous edit run.
func coalesce(top, rec EditRecord) (EditRecord, bool) {
	if top.Kind != rec.Kind {
		return EditRecord{}, false
	}

	switch top.Kind {
	case Insert:
		// Typing forward: the new insert starts where the last ended.
		if rec.Offset == top.End() {
			top.Text += rec.Text
			top.CursorAfter = rec.CursorAfter
			return top, true
		}
	case Delete:
		// Backspace run: the new deletion ends where the last began.
		if rec.End() == top.Offset {
			top.Offset = rec.Offset
			top.Text = rec.Text + top.Text
			top.CursorAfter = rec.CursorAfter
			return top, true
		}
		// Delete-forward run: repeated deletes at the same offset.
		if rec.Offset == top.Offset {
			top.Text += rec.Text
			top.CursorAfter = rec.CursorAfter
			return top, true
		}
	}
	return EditRecord{}, false
}

// Break marks an undo boundary: the next pushed record will start a new
// undo step regardless of contiguity. Called on mode transitions, cursor
// jumps, and explicit boundaries.
func (h *History) Break() {
	h.sealed = true
}

// Undo pops the most recent record, moves it to the redo stack, and
// returns it for the caller to apply in reverse. Returns false when the
// undo stack is empty.
func (h *History) Undo() (EditRecord, bool) {
	if len(h.undo) == 0 {
		return EditRecord{}, false
	}
	rec := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, rec)
	h.sealed = true
	return rec, true
}

// Redo pops the most recent undone record, moves it back to the undo
// stack, and returns it for the caller to re-apply. Returns false when the
// redo stack is empty.
func (h *History) Redo() (EditRecord, bool) {
	if len(h.redo) == 0 {
		return EditRecord{}, false
	}
	rec := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, rec)
	h.sealed = true
	return rec, true
}

// CanUndo returns true if an undo step is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if a redo step is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoDepth returns the number of undo steps available.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the number of redo steps available.
func (h *History) RedoDepth() int {
	return len(h.redo)
}

// Clear drops all history.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
	h.sealed = false
}
