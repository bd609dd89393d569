package action

import (
	"fmt"
	"strings"
)

// Kind identifies an editor command.
type Kind uint8

const (
	// KindNone is the zero Action: it changes nothing.
	KindNone Kind = iota
	// KindQuit ends the event loop.
	KindQuit
	KindMoveUp
	KindMoveDown
	KindMoveLeft
	KindMoveRight
	// KindEnterMode switches to Action.Mode.
	KindEnterMode
	// KindAddChar writes Action.Char at the cursor.
	KindAddChar
	KindNewLine
)

// Action is a single editor command. The zero value does nothing.
// Mode is meaningful only for KindEnterMode and Char only for KindAddChar.
type Action struct {
	Kind Kind
	Mode Mode
	Char rune
}

// Quit returns an action that ends the session.
func Quit() Action { return Action{Kind: KindQuit} }

// MoveUp returns an action that moves the cursor one row up.
func MoveUp() Action { return Action{Kind: KindMoveUp} }

// MoveDown returns an action that moves the cursor one row down.
func MoveDown() Action { return Action{Kind: KindMoveDown} }

// MoveLeft returns an action that moves the cursor one column left.
func MoveLeft() Action { return Action{Kind: KindMoveLeft} }

// MoveRight returns an action that moves the cursor one column right.
func MoveRight() Action { return Action{Kind: KindMoveRight} }

// EnterMode returns an action that switches to mode m.
func EnterMode(m Mode) Action { return Action{Kind: KindEnterMode, Mode: m} }

// AddChar returns an action that writes r at the cursor.
func AddChar(r rune) Action { return Action{Kind: KindAddChar, Char: r} }

// NewLine returns an action that moves the cursor to the start of the next row.
func NewLine() Action { return Action{Kind: KindNewLine} }

// String returns a readable form such as "move_up", "insert_mode" or "add_char('x')".
func (a Action) String() string {
	switch a.Kind {
	case KindEnterMode:
		return a.Mode.String() + "_mode"
	case KindAddChar:
		return fmt.Sprintf("add_char(%q)", a.Char)
	default:
		return a.Kind.String()
	}
}

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindQuit:
		return "quit"
	case KindMoveUp:
		return "move_up"
	case KindMoveDown:
		return "move_down"
	case KindMoveLeft:
		return "move_left"
	case KindMoveRight:
		return "move_right"
	case KindEnterMode:
		return "enter_mode"
	case KindAddChar:
		return "add_char"
	case KindNewLine:
		return "new_line"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Parse returns the action named by a key binding value.
// Accepted names are quit, move_up, move_down, move_left, move_right,
// new_line, normal_mode and insert_mode. AddChar carries a rune taken from
// the key event, so it cannot be bound by name.
func Parse(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "quit":
		return Quit(), nil
	case "move_up":
		return MoveUp(), nil
	case "move_down":
		return MoveDown(), nil
	case "move_left":
		return MoveLeft(), nil
	case "move_right":
		return MoveRight(), nil
	case "new_line":
		return NewLine(), nil
	}
	if m, ok := strings.CutSuffix(n, "_mode"); ok {
		mode, err := ParseMode(m)
		if err != nil {
			return Action{}, fmt.Errorf("unknown action %q", name)
		}
		return EnterMode(mode), nil
	}
	return Action{}, fmt.Errorf("unknown action %q", name)
}
