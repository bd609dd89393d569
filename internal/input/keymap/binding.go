package keymap

import (
	"github.com/dshills/modal/internal/action"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is a key specification understood by key.Parse.
	// Examples: "j", "<Up>", "<Esc>", "Ctrl+Q"
	Keys string

	// Action is the command produced when the key is pressed.
	Action action.Action
}

// DefaultNormalBindings returns the normal mode bindings.
func DefaultNormalBindings() []Binding {
	return []Binding{
		{Keys: "q", Action: action.Quit()},

		{Keys: "<Up>", Action: action.MoveUp()},
		{Keys: "k", Action: action.MoveUp()},
		{Keys: "<Down>", Action: action.MoveDown()},
		{Keys: "j", Action: action.MoveDown()},
		{Keys: "<Left>", Action: action.MoveLeft()},
		{Keys: "h", Action: action.MoveLeft()},
		{Keys: "<Right>", Action: action.MoveRight()},
		{Keys: "l", Action: action.MoveRight()},

		{Keys: "i", Action: action.EnterMode(action.Insert)},
	}
}

// DefaultInsertBindings returns the insert mode bindings.
// Printable characters are handled by the insert table's fallback.
func DefaultInsertBindings() []Binding {
	return []Binding{
		{Keys: "<Esc>", Action: action.EnterMode(action.Normal)},
		{Keys: "<Enter>", Action: action.NewLine()},
	}
}
