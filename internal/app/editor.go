// Package app wires the engine, the modal input layer, and the renderer
// into a running editor, and owns the ex command table.
package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/svanari/edi/internal/config"
	"github.com/svanari/edi/internal/engine/buffer"
	"github.com/svanari/edi/internal/engine/cursor"
	"github.com/svanari/edi/internal/engine/rope"
	"github.com/svanari/edi/internal/fileio"
	"github.com/svanari/edi/internal/input/key"
	"github.com/svanari/edi/internal/input/mode"
	"github.com/svanari/edi/internal/renderer"
	"github.com/svanari/edi/internal/session"
)

// Options configures an Editor.
type Options struct {
	// Path is the file to edit; empty opens a scratch buffer.
	Path string

	Config config.Config

	// Keymaps binds Normal mode runes to ex commands, from init.lua.
	Keymaps map[rune]string

	// Session restores and records the last cursor position.
	Session *session.Store

	Logger zerolog.Logger
}

// Editor is one running editing session over a single buffer.
type Editor struct {
	log   zerolog.Logger
	cfg   config.Config
	buf   *buffer.Buffer
	modes *mode.Manager
	rend  *renderer.Renderer
	sess  *session.Store

	keymaps map[rune]string

	message    string
	messageErr bool
	quit       bool
}

// New creates an editor, loading the file named in opts and restoring the
// last cursor position when the session store knows one.
func New(rend *renderer.Renderer, opts Options) (*Editor, error) {
	content, err := fileio.Load(opts.Path)
	if err != nil {
		return nil, err
	}

	buf := buffer.New(
		buffer.WithContent(content),
		buffer.WithPath(opts.Path),
		buffer.WithMaxUndo(opts.Config.Editor.MaxUndo),
	)

	sess := opts.Session
	if sess == nil {
		sess = session.NewStore("")
	}
	if pos, ok := sess.LastPosition(opts.Path); ok {
		buf.SetCursor(buf.Rope().PositionToOffset(pos))
	}

	return &Editor{
		log:     opts.Logger,
		cfg:     opts.Config,
		buf:     buf,
		modes:   mode.NewManager(),
		rend:    rend,
		sess:    sess,
		keymaps: opts.Keymaps,
	}, nil
}

// Buffer exposes the underlying buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Mode returns the current editing mode.
func (e *Editor) Mode() mode.Kind {
	return e.modes.Kind()
}

// Message returns the transient status message, if any.
func (e *Editor) Message() string {
	return e.message
}

// ShouldQuit reports whether a quit command has been executed.
func (e *Editor) ShouldQuit() bool {
	return e.quit
}

// HandleKey dispatches one key event.
func (e *Editor) HandleKey(ev key.Event) {
	e.message = ""
	e.messageErr = false

	if e.modes.Kind() == mode.Normal && e.modes.PendingCount() == 0 && ev.IsRune() {
		if cmd, ok := e.keymaps[ev.Rune]; ok {
			e.execCommand(cmd)
			return
		}
	}

	e.apply(e.modes.HandleKey(ev))
}

func (e *Editor) apply(act mode.Action) {
	switch act.Op {
	case mode.OpNone:

	case mode.OpMove:
		e.applyMotion(act.Motion, act.Count)

	case mode.OpEnterInsert:
		e.buf.CommitUndoBoundary()

	case mode.OpExitInsert:
		e.buf.CommitUndoBoundary()
		e.nudgeCursorOntoLine()

	case mode.OpInsertRune:
		e.buf.InsertText(string(act.Rune))

	case mode.OpInsertNewline:
		e.buf.InsertText("\n")

	case mode.OpDeleteBackward:
		e.buf.DeleteBackward()

	case mode.OpDeleteUnderCursor:
		e.buf.DeleteForward()

	case mode.OpDeleteMotion:
		e.deleteMotion(act.Motion, act.Count)

	case mode.OpDeleteLine:
		e.deleteLines(act.Count)

	case mode.OpUndo:
		if !e.buf.Undo() {
			e.setError("Already at oldest change")
		}

	case mode.OpRedo:
		if !e.buf.Redo() {
			e.setError("Already at newest change")
		}

	case mode.OpExecuteCommand:
		e.execCommand(act.Command)

	case mode.OpCancelCommand:
	}
}

func (e *Editor) applyMotion(m mode.Motion, count int) {
	e.buf.MoveCursor(func(r rope.Rope, c cursor.Cursor) cursor.Cursor {
		return e.resolveMotion(r, c, m, count)
	})
}

func (e *Editor) resolveMotion(r rope.Rope, c cursor.Cursor, m mode.Motion, count int) cursor.Cursor {
	switch m {
	case mode.MotionLeft:
		return cursor.Left(r, c, count)
	case mode.MotionRight:
		return cursor.Right(r, c, count)
	case mode.MotionUp:
		return cursor.Up(r, c, count)
	case mode.MotionDown:
		return cursor.Down(r, c, count)
	case mode.MotionLineStart:
		return cursor.LineStart(r, c)
	case mode.MotionFirstNonBlank:
		return cursor.FirstNonBlank(r, c)
	case mode.MotionLineEnd:
		return cursor.LineEnd(r, c)
	case mode.MotionBufferEnd:
		return cursor.BufferEnd(r, c)
	case mode.MotionWordForward:
		return cursor.WordForward(r, c, count)
	case mode.MotionWordBackward:
		return cursor.WordBackward(r, c, count)
	case mode.MotionHalfScreenDown:
		return cursor.HalfScreenDown(r, c, e.rend.ViewportHeight())
	case mode.MotionHalfScreenUp:
		return cursor.HalfScreenUp(r, c, e.rend.ViewportHeight())
	default:
		return c
	}
}

// deleteMotion removes the span between the cursor and the motion target.
// Vertical motions delete whole lines; the word motion lands on a word's
// last rune and deletes through it.
func (e *Editor) deleteMotion(m mode.Motion, count int) {
	r := e.buf.Rope()
	from := e.buf.Cursor()

	if m == mode.MotionUp || m == mode.MotionDown {
		fromLine := from.Position(r).Line
		toLine := e.resolveMotion(r, from, m, count).Position(r).Line
		e.deleteLineRange(min(fromLine, toLine), max(fromLine, toLine))
		return
	}

	target := e.resolveMotion(r, from, m, count).Offset
	start, end := from.Offset, target
	if start > end {
		start, end = end, start
	}
	if m == mode.MotionWordForward && end < r.Len() {
		end++
	}
	e.buf.DeleteRange(start, end)
}

// deleteLines removes count whole lines starting at the cursor's line.
func (e *Editor) deleteLines(count int) {
	r := e.buf.Rope()
	first := e.buf.Cursor().Position(r).Line
	e.deleteLineRange(first, first+count-1)
}

func (e *Editor) deleteLineRange(first, last int) {
	r := e.buf.Rope()
	if lastLine := r.LineCount() - 1; last > lastLine {
		last = lastLine
	}

	start := r.LineStartOffset(first)
	end := r.LineEndOffset(last)
	if end < r.Len() {
		end++ // take the trailing newline
	} else if start > 0 {
		start-- // last line: take the preceding newline instead
	}
	e.buf.DeleteRange(start, end)
	e.buf.MoveCursor(func(r rope.Rope, c cursor.Cursor) cursor.Cursor {
		return cursor.FirstNonBlank(r, c)
	})
}

// nudgeCursorOntoLine pulls the cursor back one rune when leaving Insert
// mode leaves it just past the line's last rune.
func (e *Editor) nudgeCursorOntoLine() {
	r := e.buf.Rope()
	c := e.buf.Cursor()
	pos := c.Position(r)
	if pos.Column > 0 && c.Offset >= r.LineEndOffset(pos.Line) {
		e.buf.MoveCursor(func(r rope.Rope, c cursor.Cursor) cursor.Cursor {
			return cursor.Left(r, c, 1)
		})
	}
}

func (e *Editor) setError(msg string) {
	e.message = msg
	e.messageErr = true
}

func (e *Editor) setMessage(msg string) {
	e.message = msg
	e.messageErr = false
}

// execCommand runs one ex command line.
func (e *Editor) execCommand(line string) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "":

	case "w", "write":
		e.save(arg)

	case "q", "quit":
		if e.buf.Modified() {
			e.setError("No write since last change (add ! to override)")
			return
		}
		e.quit = true

	case "q!", "quit!":
		e.quit = true

	case "wq", "x":
		if e.save(arg) {
			e.quit = true
		}

	default:
		if n, err := strconv.Atoi(name); err == nil {
			e.gotoLine(n)
			return
		}
		e.setError(fmt.Sprintf("Not an editor command: %s", name))
	}
}

// save writes the buffer. An argument names a new path, which sticks.
// Returns false when the write failed; the buffer is left untouched.
func (e *Editor) save(path string) bool {
	if path == "" {
		path = e.buf.Path()
	}
	if path == "" {
		e.setError("No file name")
		return false
	}

	content := e.buf.Rope().String()
	if err := fileio.Save(path, content); err != nil {
		e.log.Error().Err(err).Str("path", path).Msg("save failed")
		e.setError(fmt.Sprintf("Error writing %s: %v", path, err))
		return false
	}

	e.buf.SetPath(path)
	e.buf.MarkSaved()
	e.log.Info().Str("path", path).Int("lines", e.buf.LineCount()).Msg("saved")
	e.setMessage(fmt.Sprintf("%q %dL written", path, e.buf.LineCount()))
	return true
}

// gotoLine jumps to a 1-based line number, clamped to the buffer.
func (e *Editor) gotoLine(n int) {
	r := e.buf.Rope()
	line := n - 1
	if line < 0 {
		line = 0
	}
	e.buf.SetCursor(r.LineStartOffset(line))
	e.buf.MoveCursor(func(r rope.Rope, c cursor.Cursor) cursor.Cursor {
		return cursor.FirstNonBlank(r, c)
	})
}

// Render draws the current state.
func (e *Editor) Render() {
	r := e.buf.Rope()
	e.rend.Draw(renderer.Frame{
		Text:           r,
		Cursor:         e.buf.Cursor().Position(r),
		Mode:           e.modes.Kind().String(),
		Path:           e.buf.Path(),
		Modified:       e.buf.Modified(),
		Message:        e.message,
		MessageIsError: e.messageErr,
		CommandLine:    e.modes.CommandLine(),
		InCommand:      e.modes.Kind() == mode.Command,
	})
}

// Close records the session state for the next run.
func (e *Editor) Close() {
	if e.buf.Path() == "" {
		return
	}
	pos := e.buf.Cursor().Position(e.buf.Rope())
	if err := e.sess.SavePosition(e.buf.Path(), pos); err != nil {
		e.log.Warn().Err(err).Msg("session save failed")
	}
}
