package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press.
// Events are comparable; two events are the same key press when == holds.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if any modifier is pressed.
// For character events Shift alone does not count, since it is
// already reflected in the character itself.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsPrintable returns true for a printable character.
// Modifiers are not considered: Alt-x still carries the character x.
func (e Event) IsPrintable() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// Unmodified returns the same key with all modifiers released.
func (e Event) Unmodified() Event {
	e.Modifiers = ModNone
	return e
}

// String returns the canonical representation used to index key tables.
// Examples: "a", "A", "Space", "C-s", "Esc", "Up", "S-Tab".
func (e Event) String() string {
	var parts []string

	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "M")
	}
	// Only show Shift for non-character keys
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var keyName string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		keyName = "Space"
	case e.Key == KeyRune:
		keyName = string(e.Rune)
	default:
		keyName = e.Key.String()
	}
	parts = append(parts, keyName)

	return strings.Join(parts, "-")
}
