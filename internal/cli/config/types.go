// Package config loads fgbscope settings from defaults, an optional
// fgbscope.yaml, FGBSCOPE_* environment variables, and CLI flags, in
// that order of increasing precedence.
package config

import "time"

// Config is the fully resolved configuration for one invocation.
type Config struct {
	Verbose bool `koanf:"verbose"`

	// Watch re-decodes a local file when it changes on disk.
	Watch bool `koanf:"watch"`

	HTTP  HTTPConfig  `koanf:"http"`
	Map   MapConfig   `koanf:"map"`
	Theme ThemeConfig `koanf:"theme"`

	// FileUsed is the config file that was read, empty when none.
	FileUsed string `koanf:"-"`
}

// HTTPConfig controls remote source acquisition.
type HTTPConfig struct {
	TimeoutSeconds int    `koanf:"timeout_seconds"`
	UserAgent      string `koanf:"user_agent"`
}

// Timeout returns the acquisition timeout as a duration.
func (c HTTPConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MapConfig caps the map preview grid. Zero means fit the window.
type MapConfig struct {
	Rows int `koanf:"rows"`
	Cols int `koanf:"cols"`
}

// ThemeConfig overrides the UI colors. Empty values pick defaults for
// the detected terminal background. Values are ANSI color numbers or
// hex strings, anything lipgloss accepts.
type ThemeConfig struct {
	Accent    string `koanf:"accent"`
	Highlight string `koanf:"highlight"`
}
