package prompt

import (
	"fmt"
	"strings"

	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/display"
	"github.com/ajxudir/depcheck/pkg/formats"
	"github.com/ajxudir/depcheck/pkg/interactive"
	"github.com/ajxudir/depcheck/pkg/output"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model of the checkbox prompt.
type Model struct {
	message  string
	entries  []interactive.Entry
	theme    *display.Theme
	table    *output.Table
	pageSize int

	cursor   int
	checked  map[int]bool
	done     bool
	canceled bool
}

// NewModel creates a prompt model with the cursor on the first choice.
//
// Parameters:
//   - message: Question shown above the list
//   - entries: Menu entries in display order
//   - pageSize: Number of entries visible at once
//   - theme: Theme used to paint rows; nil renders plain text
//
// Returns:
//   - Model: The initial model
func NewModel(message string, entries []interactive.Entry, pageSize int, theme *display.Theme) Model {
	if theme == nil {
		theme = display.PlainTheme()
	}
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}

	m := Model{
		message:  message,
		entries:  entries,
		theme:    theme,
		table:    interactive.NewTable(),
		pageSize: pageSize,
		cursor:   -1,
		checked:  make(map[int]bool),
	}
	m.cursor = m.next(-1, 1)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.done || m.canceled {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up", "k", "shift+tab":
		m.cursor = m.next(m.cursor, -1)
	case "down", "j", "tab":
		m.cursor = m.next(m.cursor, 1)
	case " ":
		if m.cursor >= 0 {
			m.setChecked(m.cursor, !m.checked[m.cursor])
		}
	case "a":
		all := m.allChecked()
		for i, e := range m.entries {
			if e.IsSelectable() {
				m.setChecked(i, !all)
			}
		}
	case "i":
		for i, e := range m.entries {
			if e.IsSelectable() {
				m.setChecked(i, !m.checked[i])
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.canceled {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(constants.IconQuestion + " " + m.message + " ")

	if m.done {
		sb.WriteString(strings.Join(m.shortLabels(), ", "))
		sb.WriteString("\n")
		return sb.String()
	}
	sb.WriteString("\n")

	start, end := m.window()
	for i := start; i < end; i++ {
		sb.WriteString(m.renderEntry(i))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Selected returns the records of the checked choices in display order.
func (m Model) Selected() []formats.Record {
	var out []formats.Record
	for i, e := range m.entries {
		if e.IsSelectable() && m.checked[i] {
			out = append(out, e.Choice.Record)
		}
	}
	return out
}

// Cursor returns the entry index of the focused choice, or -1 when there is none.
func (m Model) Cursor() int {
	return m.cursor
}

// Done reports whether the selection was confirmed.
func (m Model) Done() bool {
	return m.done
}

// Canceled reports whether the prompt was canceled.
func (m Model) Canceled() bool {
	return m.canceled
}

// next returns the index of the next selectable entry from i in direction dir,
// wrapping around the list. It returns i when there is no other choice and -1
// when the list has no choices at all.
func (m Model) next(i, dir int) int {
	n := len(m.entries)
	if n == 0 {
		return -1
	}
	pos := i
	for step := 0; step < n; step++ {
		pos = ((pos+dir)%n + n) % n
		if m.entries[pos].IsSelectable() {
			return pos
		}
	}
	return i
}

func (m Model) setChecked(i int, v bool) {
	if v {
		m.checked[i] = true
	} else {
		delete(m.checked, i)
	}
}

func (m Model) allChecked() bool {
	for i, e := range m.entries {
		if e.IsSelectable() && !m.checked[i] {
			return false
		}
	}
	return true
}

// window returns the range of entries visible around the cursor.
func (m Model) window() (int, int) {
	n := len(m.entries)
	if n <= m.pageSize {
		return 0, n
	}
	start := m.cursor - m.pageSize/2
	if start < 0 {
		start = 0
	}
	if start > n-m.pageSize {
		start = n - m.pageSize
	}
	return start, start + m.pageSize
}

func (m Model) renderEntry(i int) string {
	e := m.entries[i]
	if e.Separator != nil {
		if e.Separator.IsBlank() {
			return ""
		}
		return "  " + m.theme.Paint(e.Separator.Title)
	}

	pointer := " "
	if i == m.cursor {
		pointer = constants.IconCursor
	}
	box := constants.IconUnchecked
	if m.checked[i] {
		box = constants.IconChecked
	}
	return fmt.Sprintf("%s%s %s", pointer, box, m.theme.PaintRow(e.Choice.Row, m.table))
}

func (m Model) shortLabels() []string {
	var labels []string
	for i, e := range m.entries {
		if e.IsSelectable() && m.checked[i] {
			labels = append(labels, e.Choice.Short)
		}
	}
	return labels
}
