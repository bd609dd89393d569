package app

import (
	"runtime/debug"

	"github.com/dshills/modal/internal/action"
	"github.com/dshills/modal/internal/renderer/backend"
)

// Run is the main loop: draw, wait for one event, translate it for the
// current mode and apply the resulting action. It returns nil after a quit
// action and an *IOError if reading input fails. The session is closed
// when Run returns, including when it panics.
func (e *Editor) Run() (err error) {
	if e.closed {
		return ErrSessionClosed
	}
	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			e.logger.Error("recovered: %v\n%s", perr.Value, perr.Stack)
			err = perr
		}
	}()
	// Runs before the recover above, so the terminal is restored first.
	defer e.Close()

	for {
		e.draw()

		ev, readErr := e.backend.PollEvent()
		if readErr != nil {
			e.logger.Error("reading input: %v", readErr)
			return &IOError{Op: "read event", Err: readErr}
		}

		a, ok := e.translate(ev)
		if !ok {
			continue
		}
		if e.apply(a) {
			e.logger.Info("quit requested")
			return nil
		}
	}
}

// translate maps a terminal event to at most one action.
// Only key events are interpreted.
func (e *Editor) translate(ev backend.Event) (action.Action, bool) {
	if ev.Type != backend.EventKey {
		e.logger.Debug("ignoring %s event", ev.Type)
		return action.Action{}, false
	}
	return e.keymap.Translate(e.mode, ev.Key)
}

// apply performs a and reports whether the loop should stop.
func (e *Editor) apply(a action.Action) (quit bool) {
	switch a.Kind {
	case action.KindNone:
	case action.KindQuit:
		return true
	case action.KindMoveUp:
		e.cursor.Up()
	case action.KindMoveDown:
		e.cursor.Down()
	case action.KindMoveLeft:
		e.cursor.Left()
	case action.KindMoveRight:
		e.cursor.Right()
	case action.KindEnterMode:
		e.setMode(a.Mode)
	case action.KindAddChar:
		// Written immediately; there is no document model behind the screen.
		e.backend.SetRune(int(e.cursor.X), int(e.cursor.Y), a.Char)
		e.cursor.Right()
	case action.KindNewLine:
		e.cursor.NewLine()
	}
	return false
}

func (e *Editor) setMode(m action.Mode) {
	if m == e.mode {
		return
	}
	e.logger.Debug("mode %s -> %s", e.mode, m)
	e.mode = m
	e.backend.SetCursorStyle(cursorStyle(m))
}
