package config

import "os"

// EnvPrefix is the prefix shared by all environment overrides.
const EnvPrefix = "MODAL_"

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel   = EnvPrefix + "LOG_LEVEL"
	EnvLogFile    = EnvPrefix + "LOG_FILE"
	EnvStatusText = EnvPrefix + "STATUS_TEXT"
)

// ApplyEnv overlays MODAL_* environment variables onto c.
// Note: an empty value counts as set, so MODAL_LOG_FILE= disables a file
// configured in the settings file.
func (c *Config) ApplyEnv() {
	c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookup(EnvStatusText); ok {
		c.Editor.StatusText = v
	}
}
