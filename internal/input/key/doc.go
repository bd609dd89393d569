// Package key provides normalized key events and key notation parsing.
//
// Terminal backends report keys in their own vocabulary. This package is
// the common form the rest of the editor works with:
//
//   - Key: a special key (Escape, Enter, arrows, ...) or KeyRune
//   - Modifier: Ctrl, Alt, Shift and Meta flags
//   - Event: one key press
//
// # Key Specifications
//
// Bindings are written in one of these notations:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Alt+F4"
//   - Vim-style: "<C-s>", "<A-f>", "<CR>", "<Esc>", "<Up>"
//
// Event.String returns the canonical form, which is what key tables are
// indexed by. Two events with the same canonical form are the same key.
package key
