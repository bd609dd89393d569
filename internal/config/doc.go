// Package config loads editor settings.
//
// Settings are layered with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← Highest priority (cmd/modal)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← MODAL_*
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/modal/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A settings file looks like:
//
//	[editor]
//	status_text = "Status line"
//
//	[logging]
//	level = "debug"
//	file = "/tmp/modal.log"
//
//	[keys.normal]
//	"x" = "quit"
//	"q" = "none"
//
//	[keys.insert]
//	"<C-c>" = "normal_mode"
//
// A missing settings file is not an error. A malformed one is reported as
// a *ParseError and unknown keys are rejected.
package config
