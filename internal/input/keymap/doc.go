// Package keymap translates key events into editor actions.
//
// Each mode owns a Table mapping normalized key events to actions.
// Translation is a total function: every (mode, event) pair yields either
// an action or an explicit "no action" result, so the whole mapping can be
// enumerated in tests.
//
// Default bindings:
//
//	Normal:  q quit, k/<Up> h/<Left> j/<Down> l/<Right> move, i insert mode
//	Insert:  <Esc> normal mode, <Enter> new line, printable keys add text
//
// Bindings can be overridden per mode with Keymap.Override, which accepts
// key specifications and action names as they appear in the config file.
package keymap
