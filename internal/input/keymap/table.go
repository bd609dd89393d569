package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/modal/internal/action"
	"github.com/dshills/modal/internal/input/key"
)

// Fallback decides the action for a key with no explicit binding.
type Fallback func(ev key.Event) (action.Action, bool)

// Table holds the bindings for one mode.
type Table struct {
	mode     action.Mode
	bindings map[string]action.Action
	fallback Fallback
}

// NewTable creates an empty table for the given mode.
func NewTable(mode action.Mode) *Table {
	return &Table{
		mode:     mode,
		bindings: make(map[string]action.Action),
	}
}

// Mode returns the mode this table serves.
func (t *Table) Mode() action.Mode {
	return t.mode
}

// SetFallback sets the handler for unbound keys. A nil fallback ignores them.
func (t *Table) SetFallback(fb Fallback) {
	t.fallback = fb
}

// Bind maps the key specification to a.
// An existing binding for the same key is replaced.
func (t *Table) Bind(spec string, a action.Action) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("binding %q in %s mode: %w", spec, t.mode, err)
	}
	if a.Kind == action.KindEnterMode && !a.Mode.Valid() {
		return fmt.Errorf("binding %q in %s mode: invalid target mode %v", spec, t.mode, a.Mode)
	}
	t.bindings[ev.String()] = a
	return nil
}

// Unbind removes the binding for the key specification, if any.
func (t *Table) Unbind(spec string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("unbinding %q in %s mode: %w", spec, t.mode, err)
	}
	delete(t.bindings, ev.String())
	return nil
}

// Lookup returns the action for ev.
// An exact binding wins. A key held with Ctrl, Alt or Meta then falls back
// to the binding of the bare key, so Ctrl-q quits like q. The table's
// fallback is consulted last. The boolean is false when the key produces
// no action.
func (t *Table) Lookup(ev key.Event) (action.Action, bool) {
	if a, ok := t.bindings[ev.String()]; ok {
		return a, true
	}
	if ev.IsModified() {
		if a, ok := t.bindings[ev.Unmodified().String()]; ok {
			return a, true
		}
	}
	if t.fallback != nil {
		return t.fallback(ev)
	}
	return action.Action{}, false
}

// Keys returns the canonical names of all bound keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.bindings))
	for k := range t.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of explicit bindings.
func (t *Table) Len() int {
	return len(t.bindings)
}

// InsertPrintable is the insert mode fallback: printable characters become
// AddChar whatever modifiers are held, everything else is ignored.
func InsertPrintable(ev key.Event) (action.Action, bool) {
	if ev.IsPrintable() {
		return action.AddChar(ev.Rune), true
	}
	return action.Action{}, false
}
