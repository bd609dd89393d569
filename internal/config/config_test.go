package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/modal/internal/action"
	"github.com/dshills/modal/internal/app"
	"github.com/dshills/modal/internal/input/key"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Editor.StatusText != app.DefaultStatusText {
		t.Errorf("StatusText = %q, want %q", cfg.Editor.StatusText, app.DefaultStatusText)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.File != "" {
		t.Errorf("File = %q, want empty", cfg.Logging.File)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor != Default().Editor || cfg.Logging != Default().Logging {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Editor.StatusText != app.DefaultStatusText {
		t.Errorf("StatusText = %q, want default kept", cfg.Editor.StatusText)
	}
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
[editor]
status_text = "-- modal --"

[logging]
level = "warn"
file = "/tmp/modal.log"

[keys.normal]
"x" = "quit"

[keys.insert]
"<C-c>" = "normal_mode"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.StatusText != "-- modal --" {
		t.Errorf("StatusText = %q", cfg.Editor.StatusText)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.File != "/tmp/modal.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if got := cfg.Keys["normal"]["x"]; got != "quit" {
		t.Errorf(`Keys["normal"]["x"] = %q, want quit`, got)
	}
	if got := cfg.Keys["insert"]["<C-c>"]; got != "normal_mode" {
		t.Errorf(`Keys["insert"]["<C-c>"] = %q, want normal_mode`, got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "[editor\nstatus_text = \"x\"\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail on malformed TOML")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T (%v), want *ParseError", err, err)
	}
	if perr.Path != path {
		t.Errorf("Path = %q, want %q", perr.Path, path)
	}
	if perr.Line != 1 {
		t.Errorf("Line = %d, want 1", perr.Line)
	}
}

func TestLoadUnknownField(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_size = 4
`)

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestValidateLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("Validate() = %v, want ErrInvalidLogLevel", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path != "logging.level" || verr.Value != "verbose" {
		t.Errorf("ValidationError = %+v", verr)
	}
}

func TestKeymapOverrides(t *testing.T) {
	cfg := Default()
	cfg.Keys = map[string]map[string]string{
		"normal": {"x": "quit", "q": "none"},
		"insert": {"<C-c>": "normal_mode"},
	}

	km, err := cfg.Keymap()
	if err != nil {
		t.Fatalf("Keymap() error = %v", err)
	}

	if a, ok := km.Translate(action.Normal, key.NewRuneEvent('x', key.ModNone)); !ok || a != action.Quit() {
		t.Errorf("x in normal = %v, %v; want quit", a, ok)
	}
	if _, ok := km.Translate(action.Normal, key.NewRuneEvent('q', key.ModNone)); ok {
		t.Error("q should be unbound in normal mode")
	}
	if a, ok := km.Translate(action.Insert, key.NewRuneEvent('c', key.ModCtrl)); !ok || a != action.EnterMode(action.Normal) {
		t.Errorf("C-c in insert = %v, %v; want normal_mode", a, ok)
	}
	if a, ok := km.Translate(action.Normal, key.NewRuneEvent('k', key.ModNone)); !ok || a != action.MoveUp() {
		t.Errorf("k in normal = %v, %v; defaults should be kept", a, ok)
	}
}

func TestKeymapInvalid(t *testing.T) {
	tests := []struct {
		name string
		keys map[string]map[string]string
	}{
		{"unknown mode", map[string]map[string]string{"visual": {"v": "quit"}}},
		{"unknown action", map[string]map[string]string{"normal": {"x": "delete_line"}}},
		{"bad key", map[string]map[string]string{"normal": {"<Nope>": "quit"}}},
		{"no quit left", map[string]map[string]string{"normal": {"q": "none"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Keys = tt.keys
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidKeys) {
				t.Errorf("Validate() = %v, want ErrInvalidKeys", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvStatusText, "from env")

	cfg := Default()
	cfg.Logging.File = "/tmp/from-file.log"
	cfg.ApplyEnv()

	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.File != "" {
		t.Errorf("File = %q, want empty value to override", cfg.Logging.File)
	}
	if cfg.Editor.StatusText != "from env" {
		t.Errorf("StatusText = %q, want from env", cfg.Editor.StatusText)
	}
}

func TestApplyEnvUnset(t *testing.T) {
	cfg := Default()
	cfg.applyEnv(func(string) (string, bool) { return "", false })

	if cfg.Logging.Level != "info" || cfg.Editor.StatusText != app.DefaultStatusText {
		t.Errorf("unset environment changed config: %+v", cfg)
	}
}
