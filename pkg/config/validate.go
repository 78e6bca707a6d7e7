package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field     string
	Message   string
	ValidKeys string // Valid keys or values for this context
}

// Error returns the error message string.
//
// Returns:
//   - string: formatted error message with field name if available
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError returns the error message followed by the valid keys, if known.
func (e ValidationError) VerboseError() string {
	if e.ValidKeys == "" {
		return e.Error()
	}
	return fmt.Sprintf("%s\n    Valid: %s", e.Error(), e.ValidKeys)
}

// ValidationResult holds the results of configuration validation.
type ValidationResult struct {
	Errors []ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorMessages returns all error messages as a formatted string.
//
// Returns:
//   - string: formatted error messages, or empty string if no errors
func (r *ValidationResult) ErrorMessages() string {
	if len(r.Errors) == 0 {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, "  - "+e.VerboseError())
	}
	return "Configuration validation failed:\n" + strings.Join(msgs, "\n")
}

// configFields lists the accepted top-level keys.
const configFields = "extends, installer, save_exact, global, theme, page_margin, hide_groups"

// validInstallers, validThemes and validGroups list the accepted values.
var (
	validInstallers = []string{constants.InstallerNPM, constants.InstallerYarn}
	validThemes     = []string{constants.ThemeAuto, constants.ThemeDark, constants.ThemeLight, constants.ThemeNone}
	validGroups     = []string{
		constants.GroupMismatch, constants.GroupMissing, constants.GroupPatch,
		constants.GroupMinor, constants.GroupMajor, constants.GroupNonSemver,
	}
)

// commonTypos maps common typos to correct field names.
var commonTypos = map[string]string{
	"saveExact":   "save_exact",
	"exact":       "save_exact",
	"pageMargin":  "page_margin",
	"margin":      "page_margin",
	"hideGroups":  "hide_groups",
	"hide":        "hide_groups",
	"extend":      "extends",
	"packager":    "installer",
	"manager":     "installer",
	"color_theme": "theme",
}

var lineNumberPattern = regexp.MustCompile(`line (\d+):`)

// ValidateConfigFile validates YAML configuration data for syntax errors and unknown fields.
//
// This performs strict decoding using KnownFields(true) to detect typos,
// then validates the decoded values.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *ValidationResult: validation result with any errors found
func ValidateConfigFile(data []byte) *ValidationResult {
	result := &ValidationResult{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		verbose.Printf("Config validation FAILED: YAML decode error: %v", err)
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "field") && strings.Contains(errMsg, "not found"):
			field := extractUnknownField(errMsg)
			verr := ValidationError{Message: fmt.Sprintf("unknown field '%s'", field), ValidKeys: configFields}
			if line := extractLineNumber(errMsg); line > 0 {
				verr.Message = fmt.Sprintf("unknown field '%s' (line %d)", field, line)
			}
			if suggestion := suggestSimilarField(field); suggestion != "" {
				verr.Message += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
			}
			result.Errors = append(result.Errors, verr)
		case strings.Contains(errMsg, "cannot unmarshal"):
			result.Errors = append(result.Errors, ValidationError{Message: errMsg})
		default:
			result.Errors = append(result.Errors, ValidationError{Message: fmt.Sprintf("YAML syntax error: %s", errMsg)})
		}
		return result
	}

	validateConfigStruct(&cfg, result)
	return result
}

// Validate validates a loaded Config struct.
//
// Returns:
//   - *ValidationResult: validation result with any errors found
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}
	validateConfigStruct(c, result)
	return result
}

// validateConfigStruct checks installer, theme, page margin and hidden groups.
func validateConfigStruct(cfg *Config, result *ValidationResult) {
	if cfg.Installer != "" && !contains(validInstallers, cfg.Installer) {
		result.Errors = append(result.Errors, ValidationError{
			Field:     "installer",
			Message:   fmt.Sprintf("unknown installer %q", cfg.Installer),
			ValidKeys: strings.Join(validInstallers, ", "),
		})
	}

	if cfg.Theme != "" && !contains(validThemes, strings.ToLower(cfg.Theme)) {
		result.Errors = append(result.Errors, ValidationError{
			Field:     "theme",
			Message:   fmt.Sprintf("unknown theme %q", cfg.Theme),
			ValidKeys: strings.Join(validThemes, ", "),
		})
	}

	if cfg.PageMargin != nil && *cfg.PageMargin < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "page_margin",
			Message: fmt.Sprintf("must not be negative, got %d", *cfg.PageMargin),
		})
	}

	for i, g := range cfg.HideGroups {
		if !contains(validGroups, g) {
			result.Errors = append(result.Errors, ValidationError{
				Field:     fmt.Sprintf("hide_groups[%d]", i),
				Message:   fmt.Sprintf("unknown group %q", g),
				ValidKeys: strings.Join(validGroups, ", "),
			})
		}
	}

	if result.HasErrors() {
		verbose.Printf("Config validation FAILED: %d errors found", len(result.Errors))
	}
}

// extractUnknownField extracts the field name from a yaml.v3 strict-mode error.
//
// Error format: "yaml: unmarshal errors:\n  line X: field foo not found in type config.Config"
func extractUnknownField(errMsg string) string {
	parts := strings.SplitN(errMsg, "field ", 2)
	if len(parts) < 2 {
		return ""
	}
	field := parts[1]
	if idx := strings.Index(field, " "); idx > 0 {
		field = field[:idx]
	}
	return field
}

// extractLineNumber extracts the line number from a YAML error message.
//
// Returns:
//   - int: the line number, or 0 if not found
func extractLineNumber(errMsg string) int {
	matches := lineNumberPattern.FindStringSubmatch(errMsg)
	if len(matches) < 2 {
		return 0
	}
	var line int
	_, _ = fmt.Sscanf(matches[1], "%d", &line)
	return line
}

// suggestSimilarField returns a suggested field name if the input looks like a typo.
//
// Checks common typos, then kebab-case spellings of snake_case keys.
func suggestSimilarField(field string) string {
	if suggestion, ok := commonTypos[field]; ok {
		return suggestion
	}
	if strings.Contains(field, "-") {
		snake := strings.ReplaceAll(field, "-", "_")
		for _, f := range strings.Split(configFields, ", ") {
			if f == snake {
				return snake
			}
		}
	}
	return ""
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
