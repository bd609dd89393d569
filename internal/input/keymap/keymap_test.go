package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/modal/internal/action"
	"github.com/dshills/modal/internal/input/key"
)

func rn(r rune) key.Event { return key.NewRuneEvent(r, key.ModNone) }
func sp(k key.Key) key.Event { return key.NewSpecialEvent(k, key.ModNone) }
func ctrl(r rune) key.Event { return key.NewRuneEvent(r, key.ModCtrl) }
func alt(r rune) key.Event { return key.NewRuneEvent(r, key.ModAlt) }

func TestDefaultNormalTranslation(t *testing.T) {
	km := Default()

	tests := []struct {
		name   string
		event  key.Event
		want   action.Action
		wantOK bool
	}{
		{"q quits", rn('q'), action.Quit(), true},
		{"k", rn('k'), action.MoveUp(), true},
		{"up arrow", sp(key.KeyUp), action.MoveUp(), true},
		{"j", rn('j'), action.MoveDown(), true},
		{"down arrow", sp(key.KeyDown), action.MoveDown(), true},
		{"h", rn('h'), action.MoveLeft(), true},
		{"left arrow", sp(key.KeyLeft), action.MoveLeft(), true},
		{"l", rn('l'), action.MoveRight(), true},
		{"right arrow", sp(key.KeyRight), action.MoveRight(), true},
		{"i enters insert", rn('i'), action.EnterMode(action.Insert), true},
		{"escape unbound", sp(key.KeyEscape), action.Action{}, false},
		{"enter unbound", sp(key.KeyEnter), action.Action{}, false},
		{"other rune unbound", rn('x'), action.Action{}, false},
		{"shifted Q unbound", key.NewRuneEvent('Q', key.ModShift), action.Action{}, false},
		{"ctrl-q quits", ctrl('q'), action.Quit(), true},
		{"alt-q quits", alt('q'), action.Quit(), true},
		{"alt-h moves left", alt('h'), action.MoveLeft(), true},
		{"ctrl-up moves up", key.NewSpecialEvent(key.KeyUp, key.ModCtrl), action.MoveUp(), true},
		{"ctrl-x unbound", ctrl('x'), action.Action{}, false},
		{"space unbound", rn(' '), action.Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Translate(action.Normal, tt.event)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Translate(normal, %v) = %v, %v; want %v, %v", tt.event, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDefaultInsertTranslation(t *testing.T) {
	km := Default()

	tests := []struct {
		name   string
		event  key.Event
		want   action.Action
		wantOK bool
	}{
		{"escape returns to normal", sp(key.KeyEscape), action.EnterMode(action.Normal), true},
		{"enter is newline", sp(key.KeyEnter), action.NewLine(), true},
		{"q is text", rn('q'), action.AddChar('q'), true},
		{"h is text", rn('h'), action.AddChar('h'), true},
		{"i is text", rn('i'), action.AddChar('i'), true},
		{"uppercase is text", key.NewRuneEvent('Z', key.ModShift), action.AddChar('Z'), true},
		{"space is text", rn(' '), action.AddChar(' '), true},
		{"unicode is text", rn('ß'), action.AddChar('ß'), true},
		{"up arrow unbound", sp(key.KeyUp), action.Action{}, false},
		{"tab unbound", sp(key.KeyTab), action.Action{}, false},
		{"backspace unbound", sp(key.KeyBackspace), action.Action{}, false},
		{"ctrl-c is text", ctrl('c'), action.AddChar('c'), true},
		{"alt-x is text", alt('x'), action.AddChar('x'), true},
		{"ctrl-escape returns to normal", key.NewSpecialEvent(key.KeyEscape, key.ModCtrl), action.EnterMode(action.Normal), true},
		{"shift-enter is newline", key.NewSpecialEvent(key.KeyEnter, key.ModShift), action.NewLine(), true},
		{"control char unbound", rn('\x01'), action.Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Translate(action.Insert, tt.event)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Translate(insert, %v) = %v, %v; want %v, %v", tt.event, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTranslateUnknownMode(t *testing.T) {
	km := Default()
	got, ok := km.Translate(action.Mode(42), rn('q'))
	if ok || got != (action.Action{}) {
		t.Errorf("unknown mode should yield no action, got %v, %v", got, ok)
	}
}

func TestDefaultTableKeys(t *testing.T) {
	km := Default()

	normal := km.Table(action.Normal).Keys()
	want := []string{"Down", "Left", "Right", "Up", "h", "i", "j", "k", "l", "q"}
	if len(normal) != len(want) {
		t.Fatalf("normal keys = %v, want %v", normal, want)
	}
	for i := range want {
		if normal[i] != want[i] {
			t.Errorf("normal keys[%d] = %q, want %q", i, normal[i], want[i])
		}
	}

	if n := km.Table(action.Insert).Len(); n != 2 {
		t.Errorf("insert bindings = %d, want 2", n)
	}
}

func TestTableBindErrors(t *testing.T) {
	tbl := NewTable(action.Normal)
	if err := tbl.Bind("<Nope>", action.Quit()); !errors.Is(err, key.ErrInvalidSpec) {
		t.Errorf("Bind(invalid) error = %v, want ErrInvalidSpec", err)
	}
	if err := tbl.Bind("x", action.EnterMode(action.Mode(7))); err == nil {
		t.Error("Bind with invalid target mode should fail")
	}
	if tbl.Len() != 0 {
		t.Errorf("failed binds should not be stored, Len() = %d", tbl.Len())
	}
}

func TestOverride(t *testing.T) {
	km := Default()
	err := km.Override(map[string]map[string]string{
		"normal": {
			"x":     "quit",
			"q":     "none",
			"<C-d>": "move_down",
		},
		"insert": {
			"<C-c>": "normal_mode",
		},
	})
	if err != nil {
		t.Fatalf("Override() error = %v", err)
	}

	if a, ok := km.Translate(action.Normal, rn('x')); !ok || a != action.Quit() {
		t.Errorf("x = %v, %v; want quit", a, ok)
	}
	if _, ok := km.Translate(action.Normal, rn('q')); ok {
		t.Error("q should be unbound")
	}
	if a, ok := km.Translate(action.Normal, ctrl('d')); !ok || a != action.MoveDown() {
		t.Errorf("C-d = %v, %v; want move_down", a, ok)
	}
	if a, ok := km.Translate(action.Insert, ctrl('c')); !ok || a != action.EnterMode(action.Normal) {
		t.Errorf("insert C-c = %v, %v; want normal_mode", a, ok)
	}
	// Defaults not mentioned survive.
	if a, ok := km.Translate(action.Normal, rn('k')); !ok || a != action.MoveUp() {
		t.Errorf("k = %v, %v; want move_up", a, ok)
	}
}

func TestOverrideShadowsFallback(t *testing.T) {
	km := Default()
	if err := km.Override(map[string]map[string]string{"insert": {"j": "move_down"}}); err != nil {
		t.Fatalf("Override() error = %v", err)
	}
	if a, ok := km.Translate(action.Insert, rn('j')); !ok || a != action.MoveDown() {
		t.Errorf("insert j = %v, %v; want move_down", a, ok)
	}
	if a, ok := km.Translate(action.Insert, rn('k')); !ok || a != action.AddChar('k') {
		t.Errorf("insert k = %v, %v; want add_char", a, ok)
	}
	if a, ok := km.Translate(action.Insert, alt('j')); !ok || a != action.MoveDown() {
		t.Errorf("insert A-j = %v, %v; want move_down", a, ok)
	}
}

func TestOverrideErrors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]map[string]string
	}{
		{"unknown mode", map[string]map[string]string{"visual": {"v": "quit"}}},
		{"unknown action", map[string]map[string]string{"normal": {"v": "explode"}}},
		{"bad key", map[string]map[string]string{"normal": {"<Bad>": "quit"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Default().Override(tt.overrides); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestOverrideRequiresQuit(t *testing.T) {
	err := Default().Override(map[string]map[string]string{"normal": {"q": "none"}})
	if !errors.Is(err, ErrNoQuit) {
		t.Errorf("Override() error = %v, want ErrNoQuit", err)
	}
}

func TestOverrideKeepsQuitReachable(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]map[string]string
		wantErr   bool
	}{
		{"insert loses escape", map[string]map[string]string{"insert": {"<Esc>": "none"}}, true},
		{"insert escape rebound to newline", map[string]map[string]string{"insert": {"<Esc>": "new_line"}}, true},
		{"escape moved to ctrl-c", map[string]map[string]string{"insert": {"<Esc>": "none", "<C-c>": "normal_mode"}}, false},
		{"quit only from insert", map[string]map[string]string{"normal": {"q": "none"}, "insert": {"<C-q>": "quit"}}, false},
		{"insert unreachable but escapable", map[string]map[string]string{"normal": {"i": "none"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Default().Override(tt.overrides)
			if tt.wantErr && !errors.Is(err, ErrNoQuit) {
				t.Errorf("Override() error = %v, want ErrNoQuit", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Override() error = %v, want nil", err)
			}
		})
	}
}

func TestOverrideModifiedBindingWins(t *testing.T) {
	km := Default()
	if err := km.Override(map[string]map[string]string{"normal": {"<C-l>": "move_down"}}); err != nil {
		t.Fatalf("Override() error = %v", err)
	}
	if a, ok := km.Translate(action.Normal, ctrl('l')); !ok || a != action.MoveDown() {
		t.Errorf("C-l = %v, %v; want move_down", a, ok)
	}
	if a, ok := km.Translate(action.Normal, alt('l')); !ok || a != action.MoveRight() {
		t.Errorf("A-l = %v, %v; want move_right", a, ok)
	}
}
