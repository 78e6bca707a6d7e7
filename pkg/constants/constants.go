// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for labels and messages.
package constants

// Bump values as they appear in a dependency check report.
const (
	// BumpMajor marks an update with potentially breaking API changes.
	BumpMajor = "major"

	// BumpMinor marks an update with new backwards-compatible features.
	BumpMinor = "minor"

	// BumpPatch marks an update with backwards-compatible bug fixes.
	BumpPatch = "patch"

	// BumpNonSemver marks an update of a version below 1.0.0.
	BumpNonSemver = "nonSemver"
)

// Group keys identify the menu sections in declaration order.
const (
	GroupMismatch  = "mismatch"
	GroupMissing   = "missing"
	GroupPatch     = "patch"
	GroupMinor     = "minor"
	GroupMajor     = "major"
	GroupNonSemver = "nonSemver"
)

// Row decorations used by the formatter.
const (
	// TagDevDependency is appended to the name of a devDependency.
	TagDevDependency = " devDep"

	// TagMissing is appended to the name of a package that is not installed.
	TagMissing = " missing"

	// Arrow separates the current version from the latest version.
	Arrow = "❯"

	// ShortSeparator joins name and version in the collapsed label.
	ShortSeparator = "@"
)

// User-facing messages.
const (
	// MessageUpToDate is printed instead of the prompt when nothing needs attention.
	MessageUpToDate = "All dependencies are up to date!"

	// MessageNoneSelected is printed when the operator confirms an empty selection.
	MessageNoneSelected = "No packages selected for update."

	// MessageChoose is the prompt question.
	MessageChoose = "Choose which packages to update."

	// MessageInstructions is the trailing instructional separator.
	MessageInstructions = "Space to select. Enter to start upgrading. Control-C to cancel."
)

// Dependency type filter values.
const (
	// FilterAll is the default filter value that matches all items.
	FilterAll = "all"

	// TypeProd selects regular dependencies.
	TypeProd = "prod"

	// TypeDev selects development dependencies.
	TypeDev = "dev"
)

// Installer names.
const (
	InstallerNPM  = "npm"
	InstallerYarn = "yarn"
)

// Theme names.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeNone  = "none"
)

// Icon constants for prompt rendering.
const (
	// IconCursor marks the focused row.
	IconCursor = "❯"

	// IconChecked marks a selected choice.
	IconChecked = "◉"

	// IconUnchecked marks an unselected choice.
	IconUnchecked = "◯"

	// IconQuestion prefixes the prompt message.
	IconQuestion = "?"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconError prefixes failed validation output.
	IconError = "❌"

	// IconValid prefixes successful validation output.
	IconValid = "✅"

	// IconLightbulb prefixes hints.
	IconLightbulb = "💡"
)
