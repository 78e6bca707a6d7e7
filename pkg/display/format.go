package display

import (
	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/formats"
)

// FormatRecord renders a record into its five display fields.
//
// It performs the following operations:
//   - Step 1: Name, followed by the devDep and missing tags when they apply
//   - Step 2: Current version: the declared version for a mismatch, the
//     installed version when a bump is set, otherwise empty
//   - Step 3: Arrow, only when the current version is shown
//   - Step 4: Latest version
//   - Step 5: Homepage when a latest version is known, otherwise the error message
//
// No version is computed; every value is taken from the record as given.
//
// Parameters:
//   - r: The record to format
//
// Returns:
//   - Row: The formatted fields
func FormatRecord(r formats.Record) Row {
	var row Row

	name := []Span{{Text: r.Name, Style: StyleName}}
	if r.DevDependency {
		name = append(name, Span{Text: constants.TagDevDependency, Style: StyleDevTag})
	}
	if r.NotInstalled {
		name = append(name, Span{Text: constants.TagMissing, Style: StyleMissingTag})
	}
	row[FieldName] = NewField(name...)

	current := CurrentVersion(r)
	row[FieldCurrent] = NewField(Span{Text: current, Style: StyleVersion})
	if current != "" {
		row[FieldArrow] = NewField(Span{Text: constants.Arrow, Style: StyleArrow})
	}

	row[FieldLatest] = NewField(Span{Text: r.Latest, Style: StyleLatest})

	if r.Latest != "" {
		row[FieldLink] = NewField(Span{Text: r.Homepage, Style: StyleLink})
	} else {
		row[FieldLink] = NewField(Span{Text: r.ErrorMessage(), Style: StyleError})
	}

	return row
}

// CurrentVersion returns the version shown as "current" for a record.
//
// Returns:
//   - string: PackageJSON for a mismatch, Installed when a bump is set, otherwise ""
func CurrentVersion(r formats.Record) string {
	switch {
	case r.Mismatch:
		return r.PackageJSON
	case r.Bump.IsSet():
		return r.Installed
	default:
		return ""
	}
}

// Short returns the collapsed label of a record: name@latest.
func Short(r formats.Record) string {
	return r.Name + constants.ShortSeparator + r.Latest
}
