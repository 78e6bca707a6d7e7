// Package display turns dependency records into styled display fields.
//
// Formatting is split in two steps. FormatRecord produces a Row of five
// Fields made of Spans; each Span carries plain text plus a semantic Style
// tag and no terminal escape codes:
//
//	row := display.FormatRecord(record)
//	row.Texts() // ["rimraf devDep", "2.0.0", "❯", "3.0.0", "https://..."]
//
// A Theme maps Style tags to lipgloss styles and is applied only at the
// terminal boundary:
//
//	theme, _ := display.NewTheme("auto", nil)
//	line := theme.PaintRow(row, table)
//
// Messages:
//
// Use message functions for consistent user feedback:
//
//	display.PrintUpToDate(os.Stdout)
//	display.PrintPlan(os.Stdout, commands)
package display
