// Package output provides table alignment and structured formatters for command output.
package output

import (
	"fmt"
	"strings"

	"github.com/ajxudir/depcheck/pkg/utils"
)

// Column represents a single table column with its header and fixed width.
//
// Fields:
//   - Header: The display text for this column's header (may be empty)
//   - Width: The display width for this column in character cells
type Column struct {
	Header string
	Width  int
}

// Table aligns rows of cells into columns of fixed width.
//
// Tables never sort, filter or truncate: line i of Build's output is row i
// of its input, and a cell wider than its column pushes the following
// columns to the right instead of being cut.
//
// Fields:
//   - columns: List of columns with their headers and widths
//   - separator: String used to separate columns in formatted output (default: " ")
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a new table formatter and returns a pointer to it.
//
// The table is initialized with an empty column list and a single-space
// separator.
//
// Returns:
//   - *Table: A new table instance ready for column configuration
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: " ",
	}
}

// NewFixedTable creates a headerless table with the given column widths.
//
// Parameters:
//   - widths: One width per column, in column order
//
// Returns:
//   - *Table: A table with one column per width
func NewFixedTable(widths ...int) *Table {
	t := NewTable()
	for _, w := range widths {
		t.AddColumnWithMinWidth("", w)
	}
	return t
}

// AddColumnWithMinWidth adds a column with a minimum width guarantee and returns the table.
//
// The column width will be set to the larger of minWidth or the display width
// of the header.
//
// Parameters:
//   - header: The text to display in the column header
//   - minWidth: Minimum width in characters for this column
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumnWithMinWidth(header string, minWidth int) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.Max(minWidth, utils.DisplayWidth(header)),
	})
	return t
}

// FormatRow formats a data row with proper padding for each column and returns the formatted string.
//
// Values are padded to their column widths and joined with the separator.
// Missing values are treated as empty strings, extra values are ignored, and
// trailing padding is trimmed so lines never end in spaces.
//
// Parameters:
//   - values: Variable number of strings representing the row data, one per column
//
// Returns:
//   - string: Formatted row
func (t *Table) FormatRow(values ...string) string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		parts[i] = utils.ToWidth(val, col.Width)
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// Build renders rows into aligned lines.
//
// Parameters:
//   - rows: Rows of cell values
//
// Returns:
//   - []string: One line per row, in input order
func (t *Table) Build(rows [][]string) []string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = t.FormatRow(row...)
	}
	return lines
}

// JoinCells joins already padded cells with the table separator.
//
// This is the styled counterpart of FormatRow: callers pad each cell with
// PadCell and join the result here.
func (t *Table) JoinCells(cells []string) string {
	return strings.TrimRight(strings.Join(cells, t.separator), " ")
}

// PadCell pads a possibly styled cell to the width of column index.
//
// Parameters:
//   - index: Zero-based column index
//   - cell: The cell content, possibly carrying escape sequences
//   - plainWidth: Display width of the cell's visible text
//
// Returns:
//   - string: The padded cell; unchanged when index is out of range
func (t *Table) PadCell(index int, cell string, plainWidth int) string {
	return utils.PadMeasured(cell, plainWidth, t.GetColumnWidth(index))
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// GetColumnWidth returns the width of a column by index.
//
// Returns 0 if index is out of bounds.
func (t *Table) GetColumnWidth(index int) int {
	if index >= 0 && index < len(t.columns) {
		return t.columns[index].Width
	}
	return 0
}

// String returns a string representation of the table structure for debugging.
//
// The output has the form "Table{columns: [Header1:Width1, :Width2]}".
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("Table{columns: [")
	for i, col := range t.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s:%d", col.Header, col.Width))
	}
	sb.WriteString("]}")
	return sb.String()
}
