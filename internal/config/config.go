package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/modal/internal/app"
	"github.com/dshills/modal/internal/input/keymap"
)

// Config holds all user-facing settings.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Logging LoggingConfig `toml:"logging"`

	// Keys maps mode name -> key spec -> action name. Entries are merged
	// over the built-in bindings; the action name "none" removes a binding.
	Keys map[string]map[string]string `toml:"keys"`
}

// EditorConfig holds the [editor] section.
type EditorConfig struct {
	StatusText string `toml:"status_text"`
}

// LoggingConfig holds the [logging] section.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			StatusText: app.DefaultStatusText,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the user settings file location, or "" if the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "modal", "config.toml")
}

// Load returns the defaults overlaid with the settings file at path.
// An empty path means DefaultPath. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := cfg.decode(path, data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays TOML data onto c. Fields absent from data keep their
// current values.
func (c *Config) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(c); err != nil {
		perr := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if !app.ValidLogLevel(c.Logging.Level) {
		return &ValidationError{
			Path:  "logging.level",
			Value: c.Logging.Level,
			Err:   ErrInvalidLogLevel,
		}
	}
	if _, err := c.Keymap(); err != nil {
		return err
	}
	return nil
}

// Keymap builds the default keymap with the [keys] overrides applied.
func (c *Config) Keymap() (*keymap.Keymap, error) {
	km := keymap.Default()
	if len(c.Keys) == 0 {
		return km, nil
	}
	if err := km.Override(c.Keys); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeys, err)
	}
	return km, nil
}
