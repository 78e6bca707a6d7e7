// Package filtering classifies dependency records against partial predicates.
//
// A Filter names up to four record attributes with an expected value each.
// Attributes the filter does not name are not checked, so the zero Filter
// matches every record:
//
//	f := filtering.NewFilter(filtering.MismatchIs(true), filtering.BumpAbsent())
//	if f.Matches(record) {
//	    // installed version differs from the manifest and no update is pending
//	}
//
// BumpAbsent is a constraint ("bump must be unset"), which is different
// from leaving bump out of the filter ("don't care").
//
// Select keeps the records that match, in input order:
//
//	patches := filtering.Select(records, filtering.NewFilter(filtering.BumpIs(formats.BumpPatch)))
package filtering
