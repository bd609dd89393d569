package backend

import (
	"strings"
)

// NullBackend is an in-memory backend for tests.
// Events are scripted with PostEvent; once the script is exhausted
// PollEvent returns ErrClosed instead of blocking.
type NullBackend struct {
	width, height int
	cells         [][]rune
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	events        []Event
	active        bool

	// InitErr, when set, is returned by Init.
	InitErr error

	// Call counters for lifecycle assertions.
	InitCalls     int
	ShutdownCalls int
	ShowCalls     int
	ClearCalls    int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{width: width, height: height}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]rune, b.height)
	for y := range b.cells {
		b.cells[y] = []rune(strings.Repeat(" ", b.width))
	}
}

func (b *NullBackend) Init() error {
	b.InitCalls++
	if b.InitErr != nil {
		return b.InitErr
	}
	b.active = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.ShutdownCalls++
	b.active = false
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) Clear() {
	b.ClearCalls++
	b.allocate()
}

func (b *NullBackend) SetRune(x, y int, r rune) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = r
	}
}

func (b *NullBackend) SetString(x, y int, s string) {
	layoutString(x, s, func(col int, r rune) {
		b.SetRune(col, y, r)
	})
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.cursorStyle = style
}

func (b *NullBackend) Show() {
	b.ShowCalls++
}

func (b *NullBackend) PollEvent() (Event, error) {
	if !b.active || len(b.events) == 0 {
		return Event{}, ErrClosed
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, nil
}

func (b *NullBackend) PostEvent(event Event) error {
	b.events = append(b.events, event)
	return nil
}

// Active reports whether the backend is between Init and Shutdown,
// i.e. the terminal would be in raw mode on the alternate screen.
func (b *NullBackend) Active() bool {
	return b.active
}

// Pending returns the number of scripted events not yet polled.
func (b *NullBackend) Pending() int {
	return len(b.events)
}

// Cell returns the character at the given position, or 0 outside the screen.
func (b *NullBackend) Cell(x, y int) rune {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return 0
}

// Row returns row y with trailing blanks removed.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return strings.TrimRight(string(b.cells[y]), " ")
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style for testing.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	return b.cursorStyle
}
