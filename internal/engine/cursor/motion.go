package cursor

import "github.com/svanari/edi/internal/engine/rope"

// Left moves the cursor count runes left, stopping at the start of the
// current line.
func Left(r rope.Rope, c Cursor, count int) Cursor {
	pos := r.OffsetToPosition(c.Offset)
	start := r.LineStartOffset(pos.Line)

	offset := c.Offset - count
	if offset < start {
		offset = start
	}
	return c.MoveTo(offset)
}

// Right moves the cursor count runes right, stopping at the end of the
// current line.
func Right(r rope.Rope, c Cursor, count int) Cursor {
	pos := r.OffsetToPosition(c.Offset)
	end := r.LineEndOffset(pos.Line)

	offset := c.Offset + count
	if offset > end {
		offset = end
	}
	return c.MoveTo(offset)
}

// Up moves the cursor count lines up, preserving the desired column.
func Up(r rope.Rope, c Cursor, count int) Cursor {
	return vertical(r, c, -count)
}

// Down moves the cursor count lines down, preserving the desired column.
func Down(r rope.Rope, c Cursor, count int) Cursor {
	return vertical(r, c, count)
}

func vertical(r rope.Rope, c Cursor, delta int) Cursor {
	pos := r.OffsetToPosition(c.Offset)

	col := c.DesiredCol
	if col == NoDesiredColumn {
		col = pos.Column
	}

	line := pos.Line + delta
	if line < 0 {
		line = 0
	}
	if last := r.LineCount() - 1; line > last {
		line = last
	}

	offset := r.PositionToOffset(rope.Position{Line: line, Column: col})
	return Cursor{Offset: offset, DesiredCol: col}
}

// LineStart moves the cursor to column zero of the current line.
func LineStart(r rope.Rope, c Cursor) Cursor {
	pos := r.OffsetToPosition(c.Offset)
	return c.MoveTo(r.LineStartOffset(pos.Line))
}

// FirstNonBlank moves the cursor to the first non-blank rune of the
// current line, or the line start when the line is all blanks.
func FirstNonBlank(r rope.Rope, c Cursor) Cursor {
	pos := r.OffsetToPosition(c.Offset)
	return c.MoveTo(firstNonBlankOfLine(r, pos.Line))
}

// LineEnd moves the cursor to the end of the current line, just past its
// last rune.
func LineEnd(r rope.Rope, c Cursor) Cursor {
	pos := r.OffsetToPosition(c.Offset)
	return c.MoveTo(r.LineEndOffset(pos.Line))
}

// BufferEnd moves the cursor to the first non-blank rune of the last line.
func BufferEnd(r rope.Rope, c Cursor) Cursor {
	return c.MoveTo(firstNonBlankOfLine(r, r.LineCount()-1))
}

func firstNonBlankOfLine(r rope.Rope, line int) int {
	start := r.LineStartOffset(line)
	end := r.LineEndOffset(line)
	for o := start; o < end; o++ {
		ch, ok := r.RuneAt(o)
		if !ok {
			break
		}
		if !isBlank(ch) {
			return o
		}
	}
	return start
}

// HalfScreenDown moves the cursor down by half the viewport height,
// preserving the desired column. The caller supplies the viewport height.
func HalfScreenDown(r rope.Rope, c Cursor, viewportHeight int) Cursor {
	return vertical(r, c, halfScreen(viewportHeight))
}

// HalfScreenUp moves the cursor up by half the viewport height, preserving
// the desired column.
func HalfScreenUp(r rope.Rope, c Cursor, viewportHeight int) Cursor {
	return vertical(r, c, -halfScreen(viewportHeight))
}

func halfScreen(height int) int {
	half := height / 2
	if half < 1 {
		half = 1
	}
	return half
}
