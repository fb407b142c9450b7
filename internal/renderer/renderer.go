// Package renderer draws the editor screen with tcell: the visible text
// slice, an optional line number gutter, the status line, and the message
// or command line.
package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/svanari/edi/internal/config"
	"github.com/svanari/edi/internal/engine/rope"
)

// Frame is everything needed to draw one screen.
type Frame struct {
	Text   rope.Rope
	Cursor rope.Position

	Mode     string
	Path     string
	Modified bool

	// Message is a transient status message; shown in the error style
	// when MessageIsError is set.
	Message        string
	MessageIsError bool

	// CommandLine is the ex command being typed, shown when InCommand.
	CommandLine string
	InCommand   bool
}

// Renderer owns the tcell screen and the viewport.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	view   Viewport

	tabWidth    int
	lineNumbers bool
}

// New creates a renderer drawing to screen.
func New(screen tcell.Screen, cfg config.Config) *Renderer {
	return &Renderer{
		screen:      screen,
		theme:       NewTheme(cfg.UI),
		view:        Viewport{Margin: cfg.Editor.ScrollMargin},
		tabWidth:    cfg.Editor.TabWidth,
		lineNumbers: cfg.UI.LineNumbers,
	}
}

// ViewportHeight returns the number of text rows currently visible. The
// mode engine uses it for half-screen motions.
func (r *Renderer) ViewportHeight() int {
	_, h := r.screen.Size()
	return textRows(h)
}

// textRows reserves the bottom two rows for status and message lines.
func textRows(screenHeight int) int {
	rows := screenHeight - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Draw renders a full frame. The viewport scrolls to keep the cursor
// visible before anything is drawn.
func (r *Renderer) Draw(f Frame) {
	w, h := r.screen.Size()
	r.view.Height = textRows(h)
	r.view.Follow(f.Cursor.Line, f.Text.LineCount())

	r.screen.Clear()

	gutter := 0
	if r.lineNumbers {
		gutter = gutterWidth(f.Text.LineCount())
	}

	lineCount := f.Text.LineCount()
	for row := 0; row < r.view.Height; row++ {
		line := r.view.Top + row
		if line >= lineCount {
			break
		}
		if r.lineNumbers {
			r.drawLineNumber(row, line, gutter)
		}
		r.drawLine(row, gutter, w, f.Text.LineText(line))
	}

	r.drawStatus(f, w, h-2)
	r.drawMessage(f, w, h-1)
	r.placeCursor(f, gutter, h)

	r.screen.Show()
}

func gutterWidth(lineCount int) int {
	digits := len(fmt.Sprint(lineCount))
	if digits < 3 {
		digits = 3
	}
	return digits + 1
}

func (r *Renderer) drawLineNumber(row, line, gutter int) {
	label := fmt.Sprintf("%*d ", gutter-1, line+1)
	for i, ch := range label {
		r.screen.SetContent(i, row, ch, nil, r.theme.LineNum)
	}
}

func (r *Renderer) drawLine(row, x, width int, text string) {
	for _, ch := range text {
		if x >= width {
			return
		}
		if ch == '\t' {
			next := x + r.tabWidth - (x % r.tabWidth)
			for ; x < next && x < width; x++ {
				r.screen.SetContent(x, row, ' ', nil, r.theme.Text)
			}
			continue
		}
		r.screen.SetContent(x, row, ch, nil, r.theme.Text)
		x += runewidth.RuneWidth(ch)
	}
}

func (r *Renderer) drawStatus(f Frame, width, row int) {
	name := f.Path
	if name == "" {
		name = "[scratch]"
	}
	flag := ""
	if f.Modified {
		flag = " [+]"
	}

	left := fmt.Sprintf(" %s  %s%s", f.Mode, name, flag)
	right := fmt.Sprintf("%d:%d ", f.Cursor.Line+1, f.Cursor.Column+1)

	r.fillRow(row, width, r.theme.Status)
	r.drawText(0, row, width, left, r.theme.Status)
	if rw := runewidth.StringWidth(right); rw < width {
		r.drawText(width-rw, row, width, right, r.theme.Status)
	}
}

func (r *Renderer) drawMessage(f Frame, width, row int) {
	switch {
	case f.InCommand:
		r.drawText(0, row, width, ":"+f.CommandLine, r.theme.Text)
	case f.Message != "":
		style := r.theme.Message
		if f.MessageIsError {
			style = r.theme.Error
		}
		r.drawText(0, row, width, f.Message, style)
	}
}

func (r *Renderer) fillRow(row, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, row, ' ', nil, style)
	}
}

func (r *Renderer) drawText(x, row, width int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, row, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func (r *Renderer) placeCursor(f Frame, gutter, screenHeight int) {
	if f.InCommand {
		r.screen.ShowCursor(1+runewidth.StringWidth(f.CommandLine), screenHeight-1)
		return
	}

	row := f.Cursor.Line - r.view.Top
	if row < 0 || row >= r.view.Height {
		r.screen.HideCursor()
		return
	}

	x := gutter + r.visualColumn(f.Text, f.Cursor)
	r.screen.ShowCursor(x, row)
}

// visualColumn converts the cursor's rune column to a screen column,
// accounting for tabs and wide runes.
func (r *Renderer) visualColumn(text rope.Rope, pos rope.Position) int {
	start := text.LineStartOffset(pos.Line)
	prefix := text.Slice(start, start+pos.Column)

	x := 0
	for _, ch := range prefix {
		if ch == '\t' {
			x += r.tabWidth - (x % r.tabWidth)
			continue
		}
		x += runewidth.RuneWidth(ch)
	}
	return x
}
