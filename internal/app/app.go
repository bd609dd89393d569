// Package app provides the editor session: it owns the terminal backend,
// the current mode and the cursor, and runs the render/input loop.
package app

import (
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/modal/internal/action"
	"github.com/dshills/modal/internal/input/keymap"
	"github.com/dshills/modal/internal/renderer/backend"
)

// DefaultStatusText is shown on the status line when none is configured.
const DefaultStatusText = "Status line"

// Options configures an editor session.
type Options struct {
	// StatusText is drawn on the status line. Empty means DefaultStatusText.
	StatusText string

	// Keymap translates keys per mode. Nil means keymap.Default().
	Keymap *keymap.Keymap

	// Logger receives session diagnostics. Nil discards them.
	Logger *Logger
}

// Editor is a single editing session. It holds the terminal exclusively
// from New until Close and is not safe for concurrent use.
type Editor struct {
	backend backend.Backend
	keymap  *keymap.Keymap
	logger  *Logger

	sessionID string
	status    string

	// Terminal dimensions captured at startup.
	width, height int

	cursor Cursor
	mode   action.Mode

	closeOnce sync.Once
	closed    bool
}

// New acquires the terminal through b and returns a session in normal
// mode with the cursor at the origin. Any acquisition failure is returned
// as a *TerminalInitError.
func New(b backend.Backend, opts Options) (*Editor, error) {
	if b == nil {
		return nil, &TerminalInitError{Step: "open", Err: ErrNoBackend}
	}

	if err := b.Init(); err != nil {
		return nil, &TerminalInitError{Step: "init", Err: err}
	}
	b.Clear()

	km := opts.Keymap
	if km == nil {
		km = keymap.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger()
	}

	width, height := b.Size()
	status := opts.StatusText
	if status == "" {
		status = DefaultStatusText
	}

	e := &Editor{
		backend:   b,
		keymap:    km,
		sessionID: uuid.NewString(),
		status:    runewidth.Truncate(status, width, ""),
		width:     width,
		height:    height,
		mode:      action.Normal,
	}
	e.logger = logger.WithComponent("editor").WithField("session", e.sessionID)
	e.backend.SetCursorStyle(cursorStyle(e.mode))

	e.logger.Info("session started: %dx%d", width, height)
	return e, nil
}

// Close flushes pending output and returns the terminal to its normal
// screen and input mode. It runs once; later calls do nothing.
// Teardown is best-effort and never reports an error.
func (e *Editor) Close() {
	e.closeOnce.Do(func() {
		e.closed = true
		e.backend.Show()
		e.backend.Shutdown()
		e.logger.Info("session closed")
	})
}

// Mode returns the current editing mode.
func (e *Editor) Mode() action.Mode {
	return e.mode
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() Cursor {
	return e.cursor
}

// Size returns the terminal dimensions captured at startup.
func (e *Editor) Size() (width, height int) {
	return e.width, e.height
}

// SessionID returns the identifier attached to this session's log lines.
func (e *Editor) SessionID() string {
	return e.sessionID
}

func cursorStyle(m action.Mode) backend.CursorStyle {
	if m == action.Insert {
		return backend.CursorBar
	}
	return backend.CursorBlock
}
