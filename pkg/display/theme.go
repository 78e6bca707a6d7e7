package display

import (
	"fmt"
	"strings"

	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/output"
	"github.com/ajxudir/depcheck/pkg/utils"
	"github.com/charmbracelet/lipgloss"
)

// palette holds the colors a theme draws from.
type palette struct {
	Text   lipgloss.TerminalColor
	Muted  lipgloss.TerminalColor
	Accent lipgloss.TerminalColor
	Green  lipgloss.TerminalColor
	Yellow lipgloss.TerminalColor
	Red    lipgloss.TerminalColor
	Purple lipgloss.TerminalColor
}

var palettes = map[string]palette{
	constants.ThemeAuto: {
		Text:   lipgloss.AdaptiveColor{Dark: "#e6edf3", Light: "#1f2328"},
		Muted:  lipgloss.AdaptiveColor{Dark: "#8b949e", Light: "#656d76"},
		Accent: lipgloss.AdaptiveColor{Dark: "#58a6ff", Light: "#0969da"},
		Green:  lipgloss.AdaptiveColor{Dark: "#3fb950", Light: "#1a7f37"},
		Yellow: lipgloss.AdaptiveColor{Dark: "#d29922", Light: "#9a6700"},
		Red:    lipgloss.AdaptiveColor{Dark: "#f85149", Light: "#cf222e"},
		Purple: lipgloss.AdaptiveColor{Dark: "#bc8cff", Light: "#8250df"},
	},
	constants.ThemeDark: {
		Text:   lipgloss.Color("#e6edf3"),
		Muted:  lipgloss.Color("#8b949e"),
		Accent: lipgloss.Color("#58a6ff"),
		Green:  lipgloss.Color("#3fb950"),
		Yellow: lipgloss.Color("#d29922"),
		Red:    lipgloss.Color("#f85149"),
		Purple: lipgloss.Color("#bc8cff"),
	},
	constants.ThemeLight: {
		Text:   lipgloss.Color("#1f2328"),
		Muted:  lipgloss.Color("#656d76"),
		Accent: lipgloss.Color("#0969da"),
		Green:  lipgloss.Color("#1a7f37"),
		Yellow: lipgloss.Color("#9a6700"),
		Red:    lipgloss.Color("#cf222e"),
		Purple: lipgloss.Color("#8250df"),
	},
}

// ThemeNames lists the accepted theme names.
var ThemeNames = []string{constants.ThemeAuto, constants.ThemeDark, constants.ThemeLight, constants.ThemeNone}

// Theme applies terminal styling to fields.
//
// A plain theme (ThemeNone) renders text unchanged.
type Theme struct {
	name   string
	plain  bool
	styles map[Style]lipgloss.Style
}

// NewTheme builds a theme by name.
//
// Parameters:
//   - name: One of ThemeNames
//   - renderer: lipgloss renderer bound to the output; nil uses the default renderer
//
// Returns:
//   - *Theme: The theme
//   - error: When the name is unknown
func NewTheme(name string, renderer *lipgloss.Renderer) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == constants.ThemeNone {
		return PlainTheme(), nil
	}

	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (valid: %s)", name, strings.Join(ThemeNames, ", "))
	}
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	fg := func(c lipgloss.TerminalColor) lipgloss.Style { return renderer.NewStyle().Foreground(c) }
	title := func(c lipgloss.TerminalColor) lipgloss.Style { return fg(c).Bold(true).Underline(true) }

	return &Theme{
		name: name,
		styles: map[Style]lipgloss.Style{
			StylePlain:         renderer.NewStyle(),
			StyleName:          fg(p.Yellow),
			StyleDevTag:        fg(p.Green),
			StyleMissingTag:    fg(p.Red),
			StyleVersion:       fg(p.Text),
			StyleArrow:         fg(p.Muted),
			StyleLatest:        fg(p.Text).Bold(true),
			StyleLink:          fg(p.Accent).Underline(true),
			StyleError:         fg(p.Red),
			StyleTitleSafe:     title(p.Green),
			StyleNoteSafe:      fg(p.Green),
			StyleTitleCaution:  title(p.Yellow),
			StyleNoteCaution:   fg(p.Yellow),
			StyleTitleDanger:   title(p.Red),
			StyleNoteDanger:    fg(p.Red),
			StyleTitleUnstable: title(p.Purple),
			StyleNoteUnstable:  fg(p.Purple),
			StyleInstructions:  fg(p.Muted),
		},
	}, nil
}

// PlainTheme returns a theme that renders text without styling.
func PlainTheme() *Theme {
	return &Theme{name: constants.ThemeNone, plain: true}
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// IsPlain reports whether the theme renders without styling.
func (t *Theme) IsPlain() bool {
	return t.plain
}

// Paint renders a field with the theme's styles.
func (t *Theme) Paint(f Field) string {
	if t.plain {
		return f.Text()
	}

	var sb strings.Builder
	for _, s := range f {
		style, ok := t.styles[s.Style]
		if !ok {
			sb.WriteString(s.Text)
			continue
		}
		sb.WriteString(style.Render(s.Text))
	}
	return sb.String()
}

// PaintRow renders a row aligned to the table's columns.
//
// Padding is computed from each field's plain text so escape sequences do
// not shift the columns. With a plain theme the result equals
// table.FormatRow(row.Texts()...).
func (t *Theme) PaintRow(row Row, table *output.Table) string {
	cells := make([]string, RowFields)
	for i, f := range row {
		cells[i] = table.PadCell(i, t.Paint(f), utils.DisplayWidth(f.Text()))
	}
	return table.JoinCells(cells)
}
