package interactive

import (
	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/display"
	"github.com/ajxudir/depcheck/pkg/formats"
	"github.com/ajxudir/depcheck/pkg/output"
)

// GroupCount is the number of choices in one non-empty group.
type GroupCount struct {
	Key   string
	Title string
	Count int
}

// Menu is the ordered list of entries handed to the prompt.
//
// Fields:
//   - Entries: Separators and choices in display order; nil when nothing needs attention
type Menu struct {
	Entries []Entry

	counts []GroupCount
}

// BuildChoiceList assembles every group into one menu.
//
// It performs the following operations:
//   - Step 1: Assembles each group in declaration order
//   - Step 2: Concatenates the non-empty sections
//   - Step 3: Appends a blank separator, the instructions and a final blank separator
//
// Parameters:
//   - records: All records, in report order
//   - groups: The sections to render, usually Groups
//
// Returns:
//   - Menu: The assembled menu; Empty reports whether there is anything to present
func BuildChoiceList(records []formats.Record, groups []Group) Menu {
	table := NewTable()

	var m Menu
	for _, g := range groups {
		section := AssembleGroup(records, g, table)
		if len(section) == 0 {
			continue
		}
		m.Entries = append(m.Entries, section...)
		m.counts = append(m.counts, GroupCount{
			Key:   g.Key,
			Title: g.Title.Text(),
			Count: countChoices(section),
		})
	}

	if len(m.Entries) == 0 {
		return Menu{}
	}

	m.Entries = append(m.Entries,
		BlankEntry(),
		SeparatorEntry(display.NewField(display.Span{Text: constants.MessageInstructions, Style: display.StyleInstructions})),
		BlankEntry(),
	)
	return m
}

// Empty reports whether the menu has nothing to present.
func (m Menu) Empty() bool {
	return len(m.Entries) == 0
}

// Choices returns the choices of the menu in display order.
func (m Menu) Choices() []Choice {
	var out []Choice
	for _, e := range m.Entries {
		if e.Choice != nil {
			out = append(out, *e.Choice)
		}
	}
	return out
}

// GroupCounts returns the size of each non-empty group in display order.
func (m Menu) GroupCounts() []GroupCount {
	return m.counts
}

// Lines returns the plain text of every entry, one per line.
func (m Menu) Lines() []string {
	lines := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		lines[i] = e.Text()
	}
	return lines
}

// Result converts the menu into its structured output form.
//
// Parameters:
//   - total: Number of records in the report
//
// Returns:
//   - *output.MenuResult: Groups and their packages in display order
func (m Menu) Result(total int) *output.MenuResult {
	result := &output.MenuResult{
		Summary: output.MenuSummary{
			TotalPackages: total,
			Groups:        len(m.counts),
		},
		Groups: make([]output.MenuGroup, 0, len(m.counts)),
	}

	gi := -1
	for _, e := range m.Entries {
		switch {
		case e.Separator != nil:
			// A titled separator starts the next group; the trailing
			// instructions come after the last group.
			if !e.Separator.IsBlank() && gi+1 < len(m.counts) {
				gi++
				result.Groups = append(result.Groups, output.MenuGroup{
					Key:      m.counts[gi].Key,
					Title:    m.counts[gi].Title,
					Packages: []output.MenuPackage{},
				})
			}
		case e.Choice != nil && gi >= 0:
			g := &result.Groups[gi]
			g.Packages = append(g.Packages, MenuPackage(*e.Choice))
			result.Summary.UpgradablePackages++
		}
	}

	return result
}

// MenuPackage converts a choice into its structured output form.
func MenuPackage(c Choice) output.MenuPackage {
	return output.MenuPackage{
		Name:          c.Record.Name,
		Current:       c.Row[display.FieldCurrent].Text(),
		Latest:        c.Record.Latest,
		Link:          c.Row[display.FieldLink].Text(),
		DevDependency: c.Record.DevDependency,
		Missing:       c.Record.NotInstalled,
		Short:         c.Short,
	}
}

func countChoices(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.IsSelectable() {
			n++
		}
	}
	return n
}
