package interactive

import (
	"strings"
	"testing"

	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/display"
	"github.com/ajxudir/depcheck/pkg/formats"
	"github.com/ajxudir/depcheck/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// groupByKey returns the group with the given key from Groups.
func groupByKey(t *testing.T, key string) Group {
	t.Helper()
	for _, g := range Groups {
		if g.Key == key {
			return g
		}
	}
	t.Fatalf("no group %q", key)
	return Group{}
}

// sectionNames returns the record names of the choices in entries.
func sectionNames(entries []Entry) []string {
	var names []string
	for _, e := range entries {
		if e.Choice != nil {
			names = append(names, e.Choice.Record.Name)
		}
	}
	return names
}

// TestGroupsTable tests the fixed group declarations.
//
// It verifies:
//   - Groups are declared in display priority order
//   - Titles carry the section headings
func TestGroupsTable(t *testing.T) {
	assert.Equal(t, []string{"mismatch", "missing", "patch", "minor", "major", "nonSemver"}, GroupKeys())
	assert.Equal(t, "Update package.json to match version installed.", Groups[0].Title.Text())
	assert.Equal(t, "Missing. You probably want these.", Groups[1].Title.Text())
	assert.Equal(t, "Patch Update Backwards-compatible bug fixes.", Groups[2].Title.Text())
	assert.Equal(t, "Minor Update New backwards-compatible features.", Groups[3].Title.Text())
	assert.Equal(t, "Major Update Potentially breaking API changes. Use caution.", Groups[4].Title.Text())
	assert.Equal(t, "Non-Semver Versions less than 1.0.0, caution.", Groups[5].Title.Text())
	assert.Equal(t, "{mismatch=true bump=<absent>}", Groups[0].Filter.String())
}

// TestVisibleGroups tests hiding sections.
func TestVisibleGroups(t *testing.T) {
	assert.Equal(t, Groups, VisibleGroups(nil))

	visible := VisibleGroups([]string{"major", "unknown"})
	require.Len(t, visible, 5)
	for _, g := range visible {
		assert.NotEqual(t, "major", g.Key)
	}
}

// TestNewChoice tests choice construction.
//
// It verifies:
//   - Up-to-date records produce no choice
//   - Choices keep the record and the short label
func TestNewChoice(t *testing.T) {
	_, ok := NewChoice(formats.Record{Name: "fresh", Installed: "1.0.0", Latest: "1.0.0"})
	assert.False(t, ok)

	r := testutil.BumpRecord("chalk", "4.1.0", "4.1.2", formats.BumpPatch)
	c, ok := NewChoice(r)
	require.True(t, ok)
	assert.Equal(t, r, c.Record)
	assert.Equal(t, "chalk@4.1.2", c.Short)
	assert.Equal(t, "4.1.0", c.Row[display.FieldCurrent].Text())
	assert.Empty(t, c.Label)
}

// TestEntry tests the entry helpers.
func TestEntry(t *testing.T) {
	blank := BlankEntry()
	assert.False(t, blank.IsSelectable())
	assert.True(t, blank.Separator.IsBlank())
	assert.Equal(t, "", blank.Text())

	title := SeparatorEntry(display.Plain("Title"))
	assert.False(t, title.Separator.IsBlank())
	assert.Equal(t, "Title", title.Text())

	c := ChoiceEntry(Choice{Label: "row"})
	assert.True(t, c.IsSelectable())
	assert.Equal(t, "row", c.Text())

	assert.Equal(t, "", Entry{}.Text())
}

// TestAssembleGroup tests the behavior of AssembleGroup.
//
// It verifies:
//   - A section starts with a blank and a titled separator
//   - Choices keep the filtered order
//   - Table line i is written back into choice i
//   - An empty section contributes nothing
func TestAssembleGroup(t *testing.T) {
	records := []formats.Record{
		testutil.BumpRecord("zeta", "1.0.0", "1.0.1", formats.BumpPatch),
		testutil.BumpRecord("major-one", "1.0.0", "2.0.0", formats.BumpMajor),
		testutil.BumpRecord("alpha", "2.0.0", "2.0.5", formats.BumpPatch),
		testutil.BumpRecord("a-much-longer-package-name", "10.0.0", "10.0.1", formats.BumpPatch),
	}
	table := NewTable()

	entries := AssembleGroup(records, groupByKey(t, constants.GroupPatch), table)
	require.Len(t, entries, 5)
	assert.True(t, entries[0].Separator.IsBlank())
	assert.Equal(t, "Patch Update Backwards-compatible bug fixes.", entries[1].Text())
	assert.Equal(t, []string{"zeta", "alpha", "a-much-longer-package-name"}, sectionNames(entries))

	patch := filteredPatch(records)
	rows := make([][]string, len(patch))
	for i, r := range patch {
		rows[i] = display.FormatRecord(r).Texts()
	}
	lines := table.Build(rows)
	for i, e := range entries[2:] {
		assert.Equal(t, lines[i], e.Choice.Label)
		assert.True(t, strings.HasPrefix(e.Choice.Label, e.Choice.Record.Name), e.Choice.Label)
	}

	assert.Nil(t, AssembleGroup(records, groupByKey(t, constants.GroupMinor), table))
}

func filteredPatch(records []formats.Record) []formats.Record {
	var out []formats.Record
	for _, r := range records {
		if r.Bump == formats.BumpPatch {
			out = append(out, r)
		}
	}
	return out
}

// TestAssembleGroupDropsUpToDate tests that qualifying-but-current records are dropped.
//
// It verifies:
//   - A record matching a filter but with nothing to update yields no choice
func TestAssembleGroupDropsUpToDate(t *testing.T) {
	group := Group{Key: "all", Title: display.Plain("All")}
	records := []formats.Record{
		{Name: "fresh", Installed: "1.0.0", Latest: "1.0.0"},
		{Name: "stale", Installed: "1.0.0", Latest: "1.1.0", Bump: formats.BumpMinor},
	}

	entries := AssembleGroup(records, group, NewTable())
	assert.Equal(t, []string{"stale"}, sectionNames(entries))

	assert.Nil(t, AssembleGroup(records[:1], group, NewTable()))
}

// TestBuildChoiceListScenario tests the mismatch plus major scenario.
//
// It verifies:
//   - Exactly two titled sections appear, mismatch before major
//   - Each section has one choice
//   - The list ends with a blank, the instructions and a blank
func TestBuildChoiceListScenario(t *testing.T) {
	records := []formats.Record{
		{Name: "left-pad", Installed: "1.0.0", Latest: "1.0.0", PackageJSON: "1.1.0", Mismatch: true},
		{Name: "rimraf", Installed: "2.0.0", Latest: "3.0.0", Bump: formats.BumpMajor},
	}

	menu := BuildChoiceList(records, Groups)
	require.False(t, menu.Empty())

	texts := menu.Lines()
	require.Len(t, texts, 9)
	assert.Equal(t, "", texts[0])
	assert.Equal(t, "Update package.json to match version installed.", texts[1])
	assert.True(t, strings.HasPrefix(texts[2], "left-pad"))
	assert.Equal(t, "", texts[3])
	assert.Equal(t, "Major Update Potentially breaking API changes. Use caution.", texts[4])
	assert.True(t, strings.HasPrefix(texts[5], "rimraf"))
	assert.Equal(t, []string{"", constants.MessageInstructions, ""}, texts[6:])

	choices := menu.Choices()
	require.Len(t, choices, 2)
	assert.Equal(t, records[0], choices[0].Record)
	assert.Equal(t, records[1], choices[1].Record)
	assert.Contains(t, choices[0].Label, "1.1.0")
	assert.Contains(t, choices[1].Label, "2.0.0")

	assert.Equal(t, []GroupCount{
		{Key: "mismatch", Title: "Update package.json to match version installed.", Count: 1},
		{Key: "major", Title: "Major Update Potentially breaking API changes. Use caution.", Count: 1},
	}, menu.GroupCounts())
}

// TestBuildChoiceListUpToDate tests the nothing-to-present case.
func TestBuildChoiceListUpToDate(t *testing.T) {
	records := []formats.Record{
		{Name: "a", Installed: "1.0.0", Latest: "1.0.0"},
		{Name: "b", Installed: "2.0.0", Latest: "2.0.0", DevDependency: true},
	}

	menu := BuildChoiceList(records, Groups)
	assert.True(t, menu.Empty())
	assert.Nil(t, menu.Entries)
	assert.Empty(t, menu.Choices())
	assert.Empty(t, menu.GroupCounts())

	assert.True(t, BuildChoiceList(nil, Groups).Empty())
}

// TestBuildChoiceListOrder tests group and record ordering.
//
// It verifies:
//   - Sections follow declaration order regardless of input order
//   - Up-to-date records never appear
//   - Each upgradable record appears exactly once
func TestBuildChoiceListOrder(t *testing.T) {
	menu := BuildChoiceList(testutil.SampleReport(), Groups)

	var names []string
	for _, c := range menu.Choices() {
		names = append(names, c.Record.Name)
	}
	assert.Equal(t, []string{"left-pad", "lodash", "chalk", "jest", "rimraf", "pkg-zero"}, names)

	var keys []string
	for _, gc := range menu.GroupCounts() {
		keys = append(keys, gc.Key)
		assert.Equal(t, 1, gc.Count)
	}
	assert.Equal(t, GroupKeys(), keys)
}

// TestFilterExclusivity tests the bump-absent constraint of the status groups.
//
// It verifies:
//   - A mismatched record with a bump is listed under its bump only
//   - A missing record with a bump is listed under its bump only
//   - A missing record without a bump is listed under missing only
func TestFilterExclusivity(t *testing.T) {
	records := []formats.Record{
		{Name: "both", Installed: "1.0.0", Latest: "1.2.0", PackageJSON: "1.1.0", Mismatch: true, Bump: formats.BumpMinor},
		{Name: "gone", Latest: "3.0.0", NotInstalled: true, Bump: formats.BumpMajor},
		{Name: "absent", Latest: "1.0.0", NotInstalled: true},
	}

	menu := BuildChoiceList(records, Groups)
	counts := map[string]int{}
	for _, gc := range menu.GroupCounts() {
		counts[gc.Key] = gc.Count
	}
	assert.Equal(t, map[string]int{"missing": 1, "minor": 1, "major": 1}, counts)
	assert.Len(t, menu.Choices(), 3)
}

// TestBuildChoiceListHiddenGroups tests menus built from VisibleGroups.
func TestBuildChoiceListHiddenGroups(t *testing.T) {
	menu := BuildChoiceList(testutil.SampleReport(), VisibleGroups([]string{"major", "nonSemver"}))
	assert.Len(t, menu.Choices(), 4)
	assert.NotContains(t, strings.Join(menu.Lines(), "\n"), "rimraf")
}

// TestMenuResult tests the structured form of a menu.
//
// It verifies:
//   - Groups and packages follow display order
//   - Summary counts are filled
func TestMenuResult(t *testing.T) {
	report := testutil.SampleReport()
	result := BuildChoiceList(report, Groups).Result(len(report))

	assert.Equal(t, 7, result.Summary.TotalPackages)
	assert.Equal(t, 6, result.Summary.UpgradablePackages)
	assert.Equal(t, 6, result.Summary.Groups)
	require.Len(t, result.Groups, 6)

	assert.Equal(t, "mismatch", result.Groups[0].Key)
	require.Len(t, result.Groups[0].Packages, 1)
	pkg := result.Groups[0].Packages[0]
	assert.Equal(t, "left-pad", pkg.Name)
	assert.Equal(t, "1.1.0", pkg.Current)
	assert.Equal(t, "1.3.0", pkg.Latest)
	assert.Equal(t, "left-pad@1.3.0", pkg.Short)

	missing := result.Groups[1].Packages[0]
	assert.True(t, missing.Missing)
	assert.Empty(t, missing.Current)

	minor := result.Groups[3].Packages[0]
	assert.True(t, minor.DevDependency)

	empty := Menu{}.Result(2)
	assert.Equal(t, 2, empty.Summary.TotalPackages)
	assert.Empty(t, empty.Groups)
}

// TestBuildPlan tests install plan generation.
//
// It verifies:
//   - npm splits regular and dev dependencies
//   - yarn uses add and --dev
//   - save-exact drops the caret
//   - global plans use one global command
//   - an empty selection has no commands
func TestBuildPlan(t *testing.T) {
	selected := []formats.Record{
		{Name: "rimraf", Latest: "3.0.0"},
		{Name: "jest", Latest: "29.7.0", DevDependency: true},
		{Name: "chalk", Latest: "4.1.2"},
	}

	tests := []struct {
		name     string
		opts     PlanOptions
		expected []string
	}{
		{
			name:     "npm",
			opts:     PlanOptions{},
			expected: []string{"npm install --save rimraf@^3.0.0 chalk@^4.1.2", "npm install --save-dev jest@^29.7.0"},
		},
		{
			name:     "yarn",
			opts:     PlanOptions{Installer: "yarn"},
			expected: []string{"yarn add rimraf@^3.0.0 chalk@^4.1.2", "yarn add --dev jest@^29.7.0"},
		},
		{
			name:     "npm exact",
			opts:     PlanOptions{Installer: "npm", SaveExact: true},
			expected: []string{"npm install --save rimraf@3.0.0 chalk@4.1.2", "npm install --save-dev jest@29.7.0"},
		},
		{
			name:     "npm global",
			opts:     PlanOptions{Global: true},
			expected: []string{"npm install --global rimraf@^3.0.0 jest@^29.7.0 chalk@^4.1.2"},
		},
		{
			name:     "yarn global",
			opts:     PlanOptions{Installer: "yarn", Global: true},
			expected: []string{"yarn global add rimraf@^3.0.0 jest@^29.7.0 chalk@^4.1.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildPlan(selected, tt.opts)
			assert.Equal(t, tt.expected, plan.Commands())
			assert.False(t, plan.IsEmpty())
		})
	}

	assert.Equal(t, "rimraf@^3.0.0, jest@^29.7.0, chalk@^4.1.2", BuildPlan(selected, PlanOptions{}).Summary())

	empty := BuildPlan(nil, PlanOptions{})
	assert.True(t, empty.IsEmpty())
	assert.Nil(t, empty.Commands())
	assert.Equal(t, "", empty.Summary())
}

// TestSelectionResult tests the structured form of a selection.
func TestSelectionResult(t *testing.T) {
	selected := []formats.Record{testutil.BumpRecord("rimraf", "2.0.0", "3.0.0", formats.BumpMajor)}
	result := SelectionResult(selected, BuildPlan(selected, PlanOptions{}))

	require.Len(t, result.Selected, 1)
	assert.Equal(t, "rimraf@3.0.0", result.Selected[0].Short)
	assert.Equal(t, []string{"npm install --save rimraf@^3.0.0"}, result.Commands)

	empty := SelectionResult(nil, BuildPlan(nil, PlanOptions{}))
	assert.Empty(t, empty.Selected)
	assert.Equal(t, []string{}, empty.Commands)
}
