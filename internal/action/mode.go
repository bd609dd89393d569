package action

import (
	"fmt"
	"strings"
)

// Mode selects which key translation table is active.
type Mode uint8

const (
	// Normal interprets keys as commands.
	Normal Mode = iota

	// Insert interprets printable keys as text.
	Insert
)

// Modes lists every mode in declaration order.
var Modes = []Mode{Normal, Insert}

// String returns the mode identifier used in configuration and logs.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// DisplayName returns the human-readable mode name.
func (m Mode) DisplayName() string {
	return strings.ToUpper(m.String())
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m == Normal || m == Insert
}

// ParseMode returns the mode for a configuration name (case-insensitive).
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal":
		return Normal, nil
	case "insert":
		return Insert, nil
	default:
		return Normal, fmt.Errorf("unknown mode %q", name)
	}
}
