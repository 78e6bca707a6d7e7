package testutil

import (
	"github.com/ajxudir/depcheck/pkg/config"
)

// ConfigBuilder provides a fluent API for building test configurations.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfig creates a new ConfigBuilder with the working directory set to ".".
//
// Returns:
//   - *ConfigBuilder: New builder instance ready for method chaining
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: config.Config{WorkingDir: "."}}
}

// WithInstaller sets the installer.
func (b *ConfigBuilder) WithInstaller(name string) *ConfigBuilder {
	b.cfg.Installer = name
	return b
}

// WithTheme sets the theme.
func (b *ConfigBuilder) WithTheme(name string) *ConfigBuilder {
	b.cfg.Theme = name
	return b
}

// WithSaveExact enables exact version pinning.
func (b *ConfigBuilder) WithSaveExact() *ConfigBuilder {
	b.cfg.SaveExact = true
	return b
}

// WithGlobal enables global install commands.
func (b *ConfigBuilder) WithGlobal() *ConfigBuilder {
	b.cfg.Global = true
	return b
}

// WithPageMargin sets the page margin.
func (b *ConfigBuilder) WithPageMargin(margin int) *ConfigBuilder {
	b.cfg.PageMargin = &margin
	return b
}

// WithHiddenGroups sets the hidden menu sections.
func (b *ConfigBuilder) WithHiddenGroups(keys ...string) *ConfigBuilder {
	b.cfg.HideGroups = keys
	return b
}

// Build returns the constructed Config.
//
// Returns:
//   - *config.Config: A new configuration instance
func (b *ConfigBuilder) Build() *config.Config {
	cfg := b.cfg
	return &cfg
}
