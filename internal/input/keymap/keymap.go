package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/modal/internal/action"
	"github.com/dshills/modal/internal/input/key"
)

// ErrNoQuit is returned when overrides leave some mode with no key path
// to a quit binding.
var ErrNoQuit = errors.New("quit is not reachable")

// Unbound is the action name that removes a binding in overrides.
const Unbound = "none"

// Keymap holds one Table per mode.
type Keymap struct {
	tables map[action.Mode]*Table
}

// New creates a keymap with empty tables for every mode.
func New() *Keymap {
	km := &Keymap{tables: make(map[action.Mode]*Table, len(action.Modes))}
	for _, m := range action.Modes {
		km.tables[m] = NewTable(m)
	}
	return km
}

// Default returns the built-in keymap.
func Default() *Keymap {
	km := New()
	mustBindAll(km.tables[action.Normal], DefaultNormalBindings())
	mustBindAll(km.tables[action.Insert], DefaultInsertBindings())
	km.tables[action.Insert].SetFallback(InsertPrintable)
	return km
}

func mustBindAll(t *Table, bindings []Binding) {
	for _, b := range bindings {
		if err := t.Bind(b.Keys, b.Action); err != nil {
			panic(err)
		}
	}
}

// Table returns the table for mode, or nil for an unknown mode.
func (km *Keymap) Table(mode action.Mode) *Table {
	return km.tables[mode]
}

// Translate returns the action for ev in mode.
// The boolean is false when the key produces no action.
func (km *Keymap) Translate(mode action.Mode, ev key.Event) (action.Action, bool) {
	t := km.tables[mode]
	if t == nil {
		return action.Action{}, false
	}
	return t.Lookup(ev)
}

// Override applies bindings keyed by mode name, then key specification,
// with action names as values. The action name "none" removes a binding.
// Overrides are applied in sorted order so errors are reported
// deterministically. Afterwards a quit binding must still be reachable from
// every mode by following mode switch bindings.
func (km *Keymap) Override(overrides map[string]map[string]string) error {
	modeNames := make([]string, 0, len(overrides))
	for name := range overrides {
		modeNames = append(modeNames, name)
	}
	sort.Strings(modeNames)

	for _, name := range modeNames {
		mode, err := action.ParseMode(name)
		if err != nil {
			return fmt.Errorf("key overrides: %w", err)
		}
		t := km.tables[mode]

		bindings := overrides[name]
		specs := make([]string, 0, len(bindings))
		for spec := range bindings {
			specs = append(specs, spec)
		}
		sort.Strings(specs)

		for _, spec := range specs {
			value := bindings[spec]
			if strings.EqualFold(strings.TrimSpace(value), Unbound) {
				if err := t.Unbind(spec); err != nil {
					return err
				}
				continue
			}
			a, err := action.Parse(value)
			if err != nil {
				return fmt.Errorf("binding %q in %s mode: %w", spec, mode, err)
			}
			if err := t.Bind(spec, a); err != nil {
				return err
			}
		}
	}

	for _, m := range action.Modes {
		if !km.canQuitFrom(m) {
			return fmt.Errorf("%w from %s mode", ErrNoQuit, m)
		}
	}
	return nil
}

// canQuitFrom searches the mode graph from start for a table with a quit
// binding. Fallbacks never switch modes or quit, so only bindings count.
func (km *Keymap) canQuitFrom(start action.Mode) bool {
	seen := map[action.Mode]bool{start: true}
	queue := []action.Mode{start}

	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]

		t := km.tables[m]
		if t == nil {
			continue
		}
		for _, a := range t.bindings {
			switch a.Kind {
			case action.KindQuit:
				return true
			case action.KindEnterMode:
				if !seen[a.Mode] {
					seen[a.Mode] = true
					queue = append(queue, a.Mode)
				}
			}
		}
	}
	return false
}
