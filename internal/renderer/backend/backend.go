// Package backend provides the terminal backend used by the editor.
//
// A Backend owns the terminal while it is initialized: raw keystroke input,
// the alternate screen, queued cell writes and a blocking event source.
// Writes are queued and become visible on Show.
package backend

import (
	"errors"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/modal/internal/input/key"
)

// ErrClosed is returned by PollEvent once the backend can deliver no more events.
var ErrClosed = errors.New("backend closed")

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorUnderline:
		return "underline"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFocus
	EventInterrupt
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventPaste:
		return "paste"
	case EventFocus:
		return "focus"
	case EventInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Focused is set for EventFocus. For EventPaste it marks the start of a paste.
	Focused bool
}

// KeyEvent wraps a key press in an Event.
func KeyEvent(k key.Event) Event {
	return Event{Type: EventKey, Key: k}
}

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init switches the terminal to raw input and the alternate screen.
	// Must be called before any other methods.
	Init() error

	// Shutdown restores the normal screen and cooked input.
	// It is best-effort and never fails.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// Clear clears the entire screen.
	Clear()

	// SetRune queues a single character at the given position.
	// Positions outside the terminal are silently ignored.
	SetRune(x, y int, r rune)

	// SetString queues s starting at the given position, advancing by
	// the display width of each rune.
	SetString(x, y int, s string)

	// ShowCursor queues a move of the visible cursor.
	ShowCursor(x, y int)

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// Show flushes all queued output as one frame.
	Show()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() (Event, error)

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event) error
}

// layoutString calls set for each rune of s with its column, starting at x.
// Zero-width runes are dropped; wide runes advance two columns.
func layoutString(x int, s string, set func(col int, r rune)) {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		set(col, r)
		col += w
	}
}
