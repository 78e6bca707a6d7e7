package warnings

import (
	"github.com/ajxudir/depcheck/pkg/formats"
)

// CheckRecords warns about report records that will not be shown the way
// the report author may expect.
//
// It performs the following operations:
//   - Step 1: Warns once for every package name that appears more than once
//   - Step 2: Warns when a mismatched record also has a bump, since it is
//     listed under its bump section only
//   - Step 3: Warns when a record needs attention but has no latest version
//
// Parameters:
//   - records: Report records in report order
//
// Returns:
//   - int: Number of warnings written
func CheckRecords(records []formats.Record) int {
	count := 0
	seen := make(map[string]int, len(records))
	for _, r := range records {
		seen[r.Name]++
		if seen[r.Name] == 2 {
			Warnf("%s appears more than once in the report", r.Name)
			count++
		}
	}

	for _, r := range records {
		if r.Mismatch && r.Bump.IsSet() {
			Warnf("%s: installed %s differs from package.json %s; listed as a %s update",
				r.Name, r.Installed, r.PackageJSON, r.Bump)
			count++
		}
		if r.Upgradable() && r.Latest == "" {
			if msg := r.ErrorMessage(); msg != "" {
				Warnf("%s: no latest version known: %s", r.Name, msg)
			} else {
				Warnf("%s: no latest version known", r.Name)
			}
			count++
		}
	}
	return count
}
