package formats

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Report formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrMissingName is returned when a record in a report has no package name.
var ErrMissingName = errors.New("record has no moduleName")

// ReportParser decodes a dependency check report.
type ReportParser interface {
	// Parse decodes content into records, preserving report order.
	//
	// Parameters:
	//   - content: The raw report bytes
	//
	// Returns:
	//   - []Record: The decoded records in report order
	//   - error: Returns an error if the content is malformed; returns nil on success
	Parse(content []byte) ([]Record, error)
}

// GetReportParser returns the appropriate parser for a given format.
//
// Parameters:
//   - format: The format name ("json" or "yaml")
//
// Returns:
//   - ReportParser: The parser implementation for the specified format
//   - error: Returns an error if format is empty or unsupported
func GetReportParser(format string) (ReportParser, error) {
	format = strings.TrimSpace(format)
	if format == "" {
		return nil, fmt.Errorf("format cannot be empty")
	}

	switch format {
	case FormatJSON:
		return &JSONParser{}, nil
	case FormatYAML, "yml":
		return &YAMLParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatForPath picks the report format from a file extension.
//
// Unknown extensions and stdin ("-") default to JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseReport decodes report content in the given format.
func ParseReport(content []byte, format string) ([]Record, error) {
	parser, err := GetReportParser(format)
	if err != nil {
		return nil, err
	}

	records, err := parser.Parse(content)
	if err != nil {
		return nil, err
	}

	for i, r := range records {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrMissingName)
		}
	}
	return records, nil
}

// LoadReport reads and decodes a report from path, or from stdin when path is "-".
//
// Parameters:
//   - path: Report file path, or "-" for stdin
//   - format: Report format; empty selects one from the path extension
//   - stdin: Reader used when path is "-"
//
// Returns:
//   - []Record: The decoded records in report order
//   - error: Read or decode failure
func LoadReport(path, format string, stdin io.Reader) ([]Record, error) {
	if format == "" {
		format = FormatForPath(path)
	}

	var (
		content []byte
		err     error
	)
	if path == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	records, err := ParseReport(content, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return records, nil
}
