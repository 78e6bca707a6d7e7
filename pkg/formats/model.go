// Package formats defines the dependency record produced by a dependency check
// and decodes check reports (JSON or YAML) into ordered record lists.
package formats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ajxudir/depcheck/pkg/constants"
	"gopkg.in/yaml.v3"
)

// ErrUnknownBump is returned when a report carries a bump value outside the known set.
var ErrUnknownBump = errors.New("unknown bump")

// Bump is the severity of an available update.
//
// The zero value means no update severity applies to the record.
type Bump string

// Known bump values.
const (
	BumpNone      Bump = ""
	BumpMajor     Bump = constants.BumpMajor
	BumpMinor     Bump = constants.BumpMinor
	BumpPatch     Bump = constants.BumpPatch
	BumpNonSemver Bump = constants.BumpNonSemver
)

// ParseBump converts a report value into a Bump.
//
// Parameters:
//   - s: The raw value; empty means no bump
//
// Returns:
//   - Bump: The parsed bump
//   - error: ErrUnknownBump when s is not a known value
func ParseBump(s string) (Bump, error) {
	switch b := Bump(s); b {
	case BumpNone, BumpMajor, BumpMinor, BumpPatch, BumpNonSemver:
		return b, nil
	default:
		return BumpNone, fmt.Errorf("%w: %q", ErrUnknownBump, s)
	}
}

// IsSet reports whether the bump carries a severity.
func (b Bump) IsSet() bool {
	return b != BumpNone
}

// String returns the report spelling of the bump.
func (b Bump) String() string {
	return string(b)
}

// UnmarshalJSON accepts a string, null or false (both meaning no bump).
func (b *Bump) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("false")) {
		*b = BumpNone
		return nil
	}

	var raw string
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("bump must be a string: %w", err)
	}

	parsed, err := ParseBump(raw)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// UnmarshalYAML accepts a string scalar, null or false.
func (b *Bump) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("bump must be a scalar at line %d", node.Line)
	}
	if node.Tag == "!!null" || (node.Tag == "!!bool" && node.Value == "false") {
		*b = BumpNone
		return nil
	}

	parsed, err := ParseBump(node.Value)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Record is one package's dependency check result.
//
// Records are read-only input: nothing in this module computes or rewrites
// versions or flags.
//
// Fields:
//   - Name: The package name
//   - Installed: The installed version
//   - Latest: The latest version available from the registry
//   - PackageJSON: The version declared in the manifest
//   - Homepage: Optional project URL
//   - RegError: Optional registry error message
//   - PkgError: Optional package error message
//   - Mismatch: Installed version differs from the declared version
//   - NotInstalled: The package is declared but not installed
//   - DevDependency: The package is a development dependency
//   - Bump: The severity of the available update, if any
type Record struct {
	Name          string `json:"moduleName" yaml:"moduleName"`
	Installed     string `json:"installed,omitempty" yaml:"installed,omitempty"`
	Latest        string `json:"latest,omitempty" yaml:"latest,omitempty"`
	PackageJSON   string `json:"packageJson,omitempty" yaml:"packageJson,omitempty"`
	Homepage      string `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	RegError      string `json:"regError,omitempty" yaml:"regError,omitempty"`
	PkgError      string `json:"pkgError,omitempty" yaml:"pkgError,omitempty"`
	Mismatch      bool   `json:"mismatch,omitempty" yaml:"mismatch,omitempty"`
	NotInstalled  bool   `json:"notInstalled,omitempty" yaml:"notInstalled,omitempty"`
	DevDependency bool   `json:"devDependency,omitempty" yaml:"devDependency,omitempty"`
	Bump          Bump   `json:"bump,omitempty" yaml:"bump,omitempty"`
}

// Upgradable reports whether the record needs the operator's attention.
//
// A record with no mismatch, no bump and an installed package is up to date.
func (r Record) Upgradable() bool {
	return r.Mismatch || r.Bump.IsSet() || r.NotInstalled
}

// ErrorMessage returns the registry error, falling back to the package error.
func (r Record) ErrorMessage() string {
	if r.RegError != "" {
		return r.RegError
	}
	return r.PkgError
}
