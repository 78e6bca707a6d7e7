// Package config handles configuration loading and validation for depcheck.
// It reads .depcheck.yml files (yaml.v3) with optional inheritance via extends
// and falls back to an embedded default configuration.
package config

import "github.com/ajxudir/depcheck/pkg/constants"

// DefaultPageMargin is the number of terminal rows kept free around the prompt.
const DefaultPageMargin = 2

// Config is the root configuration structure.
//
// Fields:
//   - Extends: Config files loaded before this one; this file's values win
//   - Installer: Installer used for printed commands ("npm" or "yarn")
//   - SaveExact: Pin exact versions instead of caret ranges
//   - Global: Write global install commands
//   - Theme: Color theme name
//   - PageMargin: Rows subtracted from the terminal height for the page size
//   - HideGroups: Menu section keys to leave out
//   - WorkingDir: Directory the config applies to (runtime only)
type Config struct {
	Extends    []string `yaml:"extends,omitempty"`
	Installer  string   `yaml:"installer,omitempty"`
	SaveExact  bool     `yaml:"save_exact,omitempty"`
	Global     bool     `yaml:"global,omitempty"`
	Theme      string   `yaml:"theme,omitempty"`
	PageMargin *int     `yaml:"page_margin,omitempty"`
	HideGroups []string `yaml:"hide_groups,omitempty"`

	// WorkingDir is set at load time and never read from YAML.
	WorkingDir string `yaml:"-"`
}

// GetInstaller returns the configured installer, defaulting to npm.
func (c *Config) GetInstaller() string {
	if c.Installer == "" {
		return constants.InstallerNPM
	}
	return c.Installer
}

// GetTheme returns the configured theme, defaulting to auto.
func (c *Config) GetTheme() string {
	if c.Theme == "" {
		return constants.ThemeAuto
	}
	return c.Theme
}

// GetPageMargin returns the configured page margin.
//
// Returns:
//   - int: The margin, or DefaultPageMargin when unset
func (c *Config) GetPageMargin() int {
	if c.PageMargin == nil {
		return DefaultPageMargin
	}
	return *c.PageMargin
}

// IsGroupHidden reports whether the menu section key is hidden.
func (c *Config) IsGroupHidden(key string) bool {
	for _, g := range c.HideGroups {
		if g == key {
			return true
		}
	}
	return false
}
