package output

import (
	"fmt"
	"io"
	"strconv"
)

// WriteMenuResult writes a menu in the specified format.
//
// It performs the following operations:
//   - Step 1: Creates a formatter for the requested format
//   - Step 2: Writes the menu using format-specific logic
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, FormatYAML or FormatCSV)
//   - result: Menu data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error
func WriteMenuResult(w io.Writer, format Format, result *MenuResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatYAML:
		return formatter.WriteYAML(result)
	case FormatCSV:
		return writeMenuCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeMenuCSV writes one CSV row per package, prefixed with its group key.
func writeMenuCSV(f *Formatter, result *MenuResult) error {
	headers := []string{"GROUP", "NAME", "CURRENT", "LATEST", "LINK", "DEV", "MISSING"}
	var rows [][]string
	for _, group := range result.Groups {
		for _, pkg := range group.Packages {
			rows = append(rows, []string{
				group.Key,
				pkg.Name,
				pkg.Current,
				pkg.Latest,
				pkg.Link,
				strconv.FormatBool(pkg.DevDependency),
				strconv.FormatBool(pkg.Missing),
			})
		}
	}
	return f.WriteCSV(headers, rows)
}

// WriteSelectionResult writes a selection and its install plan in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, FormatYAML or FormatCSV)
//   - result: Selection data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error
func WriteSelectionResult(w io.Writer, format Format, result *SelectionResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatYAML:
		return formatter.WriteYAML(result)
	case FormatCSV:
		return writeSelectionCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeSelectionCSV writes the selected packages; commands are not part of the CSV layout.
func writeSelectionCSV(f *Formatter, result *SelectionResult) error {
	headers := []string{"NAME", "LATEST", "DEV", "SHORT"}
	rows := make([][]string, 0, len(result.Selected))
	for _, pkg := range result.Selected {
		rows = append(rows, []string{pkg.Name, pkg.Latest, strconv.FormatBool(pkg.DevDependency), pkg.Short})
	}
	return f.WriteCSV(headers, rows)
}
