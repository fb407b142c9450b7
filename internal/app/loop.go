package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/svanari/edi/internal/input/key"
)

// Run drives the editor: render, wait for an event, dispatch, repeat.
// Everything happens on this one goroutine; the engine needs no locking.
// Run returns after a quit command or when the screen is torn down.
func (e *Editor) Run(screen tcell.Screen) {
	for !e.quit {
		e.Render()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			e.HandleKey(key.FromTcell(ev))
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// Screen finalized.
			return
		}
	}
	e.Close()
}
