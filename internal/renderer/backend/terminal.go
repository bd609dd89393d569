package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modal/internal/input/key"
)

// Terminal implements Backend using tcell.
// It is driven from the editor's single goroutine and is not safe for
// concurrent use, except for PostEvent which tcell serializes.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend for the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init enters raw mode and the alternate screen. Mouse reporting and
// bracketed paste stay disabled; only keys drive the editor.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) SetRune(x, y int, r rune) {
	t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
}

func (t *Terminal) SetString(x, y int, s string) {
	layoutString(x, s, func(col int, r rune) {
		t.screen.SetContent(col, y, r, nil, tcell.StyleDefault)
	})
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	var tcellStyle tcell.CursorStyle
	switch style {
	case CursorBlock:
		tcellStyle = tcell.CursorStyleSteadyBlock
	case CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	default:
		tcellStyle = tcell.CursorStyleDefault
	}
	t.screen.SetCursorStyle(tcellStyle)
}

func (t *Terminal) Show() {
	t.screen.Show()
}

// PollEvent blocks until tcell delivers an event. tcell returns nil once
// the screen has been finalized, which is reported as ErrClosed.
func (t *Terminal) PollEvent() (Event, error) {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{}, ErrClosed
	}
	return convertEvent(ev), nil
}

// PostEvent supports key and interrupt events.
func (t *Terminal) PostEvent(event Event) error {
	switch event.Type {
	case EventKey:
		k, r, m := convertToTcellKey(event.Key)
		return t.screen.PostEvent(tcell.NewEventKey(k, r, m))
	case EventInterrupt:
		return t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	default:
		return nil
	}
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return KeyEvent(convertKey(e.Key(), e.Rune(), e.Modifiers()))
	case *tcell.EventMouse:
		return Event{Type: EventMouse}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventPaste:
		return Event{Type: EventPaste, Focused: e.Start()}
	case *tcell.EventFocus:
		return Event{Type: EventFocus, Focused: e.Focused}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}
	default:
		return Event{Type: EventNone}
	}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertKey normalizes a tcell key press.
// tcell reports Ctrl+letter as dedicated control keys; those become the
// lowercase letter with ModCtrl so they match "<C-x>" specifications.
// Enter, Tab, Backspace and Escape share codes with Ctrl+M, Ctrl+I,
// Ctrl+H and Ctrl+[ and are reported as the named keys.
func convertKey(k tcell.Key, r rune, m tcell.ModMask) key.Event {
	mods := convertMod(m)

	if k == tcell.KeyRune {
		return key.NewRuneEvent(r, mods)
	}
	if k == tcell.KeyBacktab {
		return key.NewSpecialEvent(key.KeyTab, mods.With(key.ModShift))
	}
	if named, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(named, mods)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent(rune('a'+(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl))
	}
	if k == tcell.KeyCtrlSpace {
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl))
	}
	return key.Event{Key: key.KeyNone, Modifiers: mods}
}

// convertToTcellKey is the inverse of convertKey for posted events.
func convertToTcellKey(ev key.Event) (tcell.Key, rune, tcell.ModMask) {
	mods := convertToTcellMod(ev.Modifiers)

	if ev.Key == key.KeyRune {
		if ev.Modifiers.HasCtrl() && ev.Rune >= 'a' && ev.Rune <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(ev.Rune-'a'), 0, mods
		}
		return tcell.KeyRune, ev.Rune, mods
	}
	for tk, k := range specialKeys {
		if k == ev.Key && tk != tcell.KeyBackspace {
			return tk, 0, mods
		}
	}
	return tcell.KeyRune, 0, mods
}

// convertMod converts tcell modifier mask to our Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}

// convertToTcellMod converts our Modifier to tcell.ModMask.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.HasShift() {
		result |= tcell.ModShift
	}
	if m.HasCtrl() {
		result |= tcell.ModCtrl
	}
	if m.HasAlt() {
		result |= tcell.ModAlt
	}
	if m.HasMeta() {
		result |= tcell.ModMeta
	}
	return result
}
