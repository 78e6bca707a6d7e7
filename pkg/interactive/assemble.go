package interactive

import (
	"github.com/ajxudir/depcheck/pkg/filtering"
	"github.com/ajxudir/depcheck/pkg/formats"
	"github.com/ajxudir/depcheck/pkg/output"
	"github.com/ajxudir/depcheck/pkg/verbose"
)

// AssembleGroup renders one menu section.
//
// It performs the following operations:
//   - Step 1: Selects the records matching the group's filter
//   - Step 2: Builds a choice per record, dropping up-to-date records
//   - Step 3: Builds the table over the choices' rows
//   - Step 4: Writes table line i back into choice i
//   - Step 5: Prepends a blank and a titled separator
//
// Parameters:
//   - records: All records, in report order
//   - group: The section to render
//   - table: The column layout
//
// Returns:
//   - []Entry: The section entries, or nil when no record belongs to it
func AssembleGroup(records []formats.Record, group Group, table *output.Table) []Entry {
	selected := filtering.Select(records, group.Filter)

	choices := make([]Choice, 0, len(selected))
	rows := make([][]string, 0, len(selected))
	for _, r := range selected {
		c, ok := NewChoice(r)
		if !ok {
			verbose.PackageFiltered(r.Name, "up to date, not shown in "+group.Key)
			continue
		}
		choices = append(choices, c)
		rows = append(rows, c.Row.Texts())
	}

	if len(choices) == 0 {
		return nil
	}

	lines := table.Build(rows)
	for i := range choices {
		choices[i].Label = lines[i]
	}

	entries := make([]Entry, 0, len(choices)+2)
	entries = append(entries, BlankEntry(), SeparatorEntry(group.Title))
	for _, c := range choices {
		entries = append(entries, ChoiceEntry(c))
	}

	verbose.Printf("Group %s %s: %d choice(s)", group.Key, group.Filter, len(choices))
	return entries
}
