package renderer

// Viewport tracks which slice of the buffer is on screen. It scrolls only
// when the cursor would leave the margin, so small motions keep the view
// still.
type Viewport struct {
	// Top is the first visible buffer line.
	Top int

	// Height is the number of text rows, excluding the status line.
	Height int

	// Margin keeps the cursor this many lines from the edge.
	Margin int
}

// Follow scrolls the viewport so cursorLine stays inside the margin.
// lineCount bounds the scroll at the end of the buffer.
func (v *Viewport) Follow(cursorLine, lineCount int) {
	if v.Height <= 0 {
		v.Top = cursorLine
		return
	}

	margin := v.Margin
	if margin*2 >= v.Height {
		margin = 0
	}

	if cursorLine < v.Top+margin {
		v.Top = cursorLine - margin
	}
	if cursorLine > v.Top+v.Height-1-margin {
		v.Top = cursorLine - v.Height + 1 + margin
	}

	if max := lineCount - v.Height; v.Top > max {
		v.Top = max
	}
	if v.Top < 0 {
		v.Top = 0
	}
}

// Contains reports whether the buffer line is currently visible.
func (v *Viewport) Contains(line int) bool {
	return line >= v.Top && line < v.Top+v.Height
}
