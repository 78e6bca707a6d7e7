package display

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ajxudir/depcheck/pkg/formats"
	"github.com/ajxudir/depcheck/pkg/output"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatRecord tests the behavior of FormatRecord.
//
// It verifies:
//   - Mismatch shows the declared version as current
//   - Bump shows the installed version as current
//   - The arrow appears only with a current version
//   - Link falls back to the error message when no latest version is known
func TestFormatRecord(t *testing.T) {
	tests := []struct {
		name     string
		record   formats.Record
		expected []string
	}{
		{
			name:     "mismatch",
			record:   formats.Record{Name: "left-pad", Installed: "1.0.0", Latest: "1.0.0", PackageJSON: "1.1.0", Mismatch: true},
			expected: []string{"left-pad", "1.1.0", "❯", "1.0.0", ""},
		},
		{
			name:     "major bump dev dependency",
			record:   formats.Record{Name: "rimraf", Installed: "2.0.0", Latest: "3.0.0", Bump: formats.BumpMajor, DevDependency: true, Homepage: "https://github.com/isaacs/rimraf"},
			expected: []string{"rimraf devDep", "2.0.0", "❯", "3.0.0", "https://github.com/isaacs/rimraf"},
		},
		{
			name:     "missing without bump",
			record:   formats.Record{Name: "lodash", Latest: "4.17.21", NotInstalled: true},
			expected: []string{"lodash missing", "", "", "4.17.21", ""},
		},
		{
			name:     "dev and missing",
			record:   formats.Record{Name: "jest", NotInstalled: true, DevDependency: true, Latest: "29.0.0"},
			expected: []string{"jest devDep missing", "", "", "29.0.0", ""},
		},
		{
			name:     "registry error without latest",
			record:   formats.Record{Name: "private", NotInstalled: true, RegError: "404 Not Found", PkgError: "ignored"},
			expected: []string{"private missing", "", "", "", "404 Not Found"},
		},
		{
			name:     "package error without latest",
			record:   formats.Record{Name: "broken", NotInstalled: true, PkgError: "bad package.json"},
			expected: []string{"broken missing", "", "", "", "bad package.json"},
		},
		{
			name:     "mismatch with bump prefers declared version",
			record:   formats.Record{Name: "x", Installed: "1.0.0", PackageJSON: "1.2.0", Latest: "1.3.0", Mismatch: true, Bump: formats.BumpMinor},
			expected: []string{"x", "1.2.0", "❯", "1.3.0", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRecord(tt.record).Texts())
		})
	}
}

// TestFormatRecordStyles tests that formatted fields carry semantic tags.
//
// It verifies:
//   - Name, tags, latest and link spans carry their styles
//   - No escape sequences appear in field text
func TestFormatRecordStyles(t *testing.T) {
	row := FormatRecord(formats.Record{Name: "a", Latest: "2.0.0", Installed: "1.0.0", Bump: formats.BumpMajor, DevDependency: true, NotInstalled: true, Homepage: "https://a.dev"})

	require.Len(t, row[FieldName], 3)
	assert.Equal(t, StyleName, row[FieldName][0].Style)
	assert.Equal(t, StyleDevTag, row[FieldName][1].Style)
	assert.Equal(t, StyleMissingTag, row[FieldName][2].Style)
	assert.Equal(t, StyleLatest, row[FieldLatest][0].Style)
	assert.Equal(t, StyleLink, row[FieldLink][0].Style)

	for _, text := range row.Texts() {
		assert.NotContains(t, text, "\x1b")
	}
}

// TestShort tests the behavior of Short.
func TestShort(t *testing.T) {
	assert.Equal(t, "rimraf@3.0.0", Short(formats.Record{Name: "rimraf", Latest: "3.0.0"}))
	assert.Equal(t, "ghost@", Short(formats.Record{Name: "ghost"}))
}

// TestField tests the behavior of Field helpers.
//
// It verifies:
//   - Empty spans are dropped
//   - Text concatenates spans
func TestField(t *testing.T) {
	f := NewField(Span{Text: "a"}, Span{Text: ""}, Span{Text: "b", Style: StyleLink})
	assert.Len(t, f, 2)
	assert.Equal(t, "ab", f.Text())
	assert.False(t, f.IsEmpty())
	assert.True(t, NewField().IsEmpty())
	assert.Equal(t, "x", Plain("x").Text())
}

// TestNewTheme tests theme construction.
//
// It verifies:
//   - Known names build themes
//   - "none" builds a plain theme
//   - Unknown names fail
func TestNewTheme(t *testing.T) {
	for _, name := range []string{"auto", "dark", "LIGHT"} {
		theme, err := NewTheme(name, nil)
		require.NoError(t, err, name)
		assert.False(t, theme.IsPlain())
	}

	theme, err := NewTheme("none", nil)
	require.NoError(t, err)
	assert.True(t, theme.IsPlain())
	assert.Equal(t, "none", theme.Name())

	_, err = NewTheme("solarized", nil)
	assert.Error(t, err)
}

// TestPlainThemePaintRow tests plain rendering.
//
// It verifies:
//   - A plain theme renders the same line as the table
func TestPlainThemePaintRow(t *testing.T) {
	table := output.NewFixedTable(12, 6, 1, 6, 20)
	row := FormatRecord(formats.Record{Name: "rimraf", Installed: "2.0.0", Latest: "3.0.0", Bump: formats.BumpMajor, DevDependency: true})

	assert.Equal(t, table.FormatRow(row.Texts()...), PlainTheme().PaintRow(row, table))
}

// TestColorThemePaintRow tests styled rendering.
//
// It verifies:
//   - Styled output contains escape sequences
//   - Stripping styles gives the plain table line
func TestColorThemePaintRow(t *testing.T) {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.TrueColor)
	theme, err := NewTheme("dark", renderer)
	require.NoError(t, err)

	table := output.NewFixedTable(12, 6, 1, 6, 20)
	row := FormatRecord(formats.Record{Name: "rimraf", Installed: "2.0.0", Latest: "3.0.0", Bump: formats.BumpMajor, Homepage: "https://x.dev"})

	painted := theme.PaintRow(row, table)
	assert.Contains(t, painted, "\x1b[")
	assert.Equal(t, table.FormatRow(row.Texts()...), stripANSI(painted))
}

// TestMessages tests the message printers.
func TestMessages(t *testing.T) {
	var buf bytes.Buffer

	PrintUpToDate(&buf)
	assert.Equal(t, "All dependencies are up to date!\n", buf.String())

	buf.Reset()
	PrintNoneSelected(&buf)
	assert.Equal(t, "No packages selected for update.\n", buf.String())

	buf.Reset()
	PrintWarnings(&buf, nil)
	assert.Empty(t, buf.String())
	PrintWarnings(&buf, []string{"one", "two"})
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "one")

	buf.Reset()
	PrintPlan(&buf, nil)
	assert.Empty(t, buf.String())
	PrintPlan(&buf, []string{"npm install --save a@^1.0.0"})
	assert.Contains(t, buf.String(), "  npm install --save a@^1.0.0\n")
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			i = j
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
