package interactive

import (
	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/display"
	"github.com/ajxudir/depcheck/pkg/filtering"
	"github.com/ajxudir/depcheck/pkg/formats"
	"github.com/ajxudir/depcheck/pkg/output"
)

// Group is one section of the selection menu.
//
// Fields:
//   - Key: Stable identifier used in configuration and logs
//   - Title: Styled section heading
//   - Filter: Which records belong to the section
type Group struct {
	Key    string
	Title  display.Field
	Filter filtering.Filter
}

// Groups is the fixed, ordered table of menu sections.
//
// The order is display priority and never changes at runtime. Mismatch and
// missing sections require the bump to be absent, so a record that is both
// mismatched and has a bump appears only in its bump section.
var Groups = []Group{
	{
		Key: constants.GroupMismatch,
		Title: display.NewField(
			display.Span{Text: "Update package.json to match version installed.", Style: display.StyleTitleSafe},
		),
		Filter: filtering.NewFilter(filtering.MismatchIs(true), filtering.BumpAbsent()),
	},
	{
		Key: constants.GroupMissing,
		Title: display.NewField(
			display.Span{Text: "Missing.", Style: display.StyleTitleDanger},
			display.Span{Text: " You probably want these.", Style: display.StylePlain},
		),
		Filter: filtering.NewFilter(filtering.NotInstalledIs(true), filtering.BumpAbsent()),
	},
	{
		Key: constants.GroupPatch,
		Title: display.NewField(
			display.Span{Text: "Patch Update", Style: display.StyleTitleSafe},
			display.Span{Text: " Backwards-compatible bug fixes.", Style: display.StyleNoteSafe},
		),
		Filter: filtering.NewFilter(filtering.BumpIs(formats.BumpPatch)),
	},
	{
		Key: constants.GroupMinor,
		Title: display.NewField(
			display.Span{Text: "Minor Update", Style: display.StyleTitleCaution},
			display.Span{Text: " New backwards-compatible features.", Style: display.StyleNoteCaution},
		),
		Filter: filtering.NewFilter(filtering.BumpIs(formats.BumpMinor)),
	},
	{
		Key: constants.GroupMajor,
		Title: display.NewField(
			display.Span{Text: "Major Update", Style: display.StyleTitleDanger},
			display.Span{Text: " Potentially breaking API changes. Use caution.", Style: display.StyleNoteDanger},
		),
		Filter: filtering.NewFilter(filtering.BumpIs(formats.BumpMajor)),
	},
	{
		Key: constants.GroupNonSemver,
		Title: display.NewField(
			display.Span{Text: "Non-Semver", Style: display.StyleTitleUnstable},
			display.Span{Text: " Versions less than 1.0.0, caution.", Style: display.StyleNoteUnstable},
		),
		Filter: filtering.NewFilter(filtering.BumpIs(formats.BumpNonSemver)),
	},
}

// GroupKeys returns the keys of Groups in declaration order.
func GroupKeys() []string {
	keys := make([]string, len(Groups))
	for i, g := range Groups {
		keys[i] = g.Key
	}
	return keys
}

// VisibleGroups returns Groups without the sections named in hidden.
//
// Parameters:
//   - hidden: Group keys to leave out; unknown keys are ignored
//
// Returns:
//   - []Group: The remaining groups, in declaration order
func VisibleGroups(hidden []string) []Group {
	if len(hidden) == 0 {
		return Groups
	}

	skip := make(map[string]bool, len(hidden))
	for _, k := range hidden {
		skip[k] = true
	}

	var out []Group
	for _, g := range Groups {
		if !skip[g.Key] {
			out = append(out, g)
		}
	}
	return out
}

// ColumnWidths are the fixed widths of the five menu columns:
// name, current version, arrow, latest version and link.
var ColumnWidths = []int{50, 12, 1, 12, 80}

// NewTable returns a table laid out with ColumnWidths.
func NewTable() *output.Table {
	return output.NewFixedTable(ColumnWidths...)
}
