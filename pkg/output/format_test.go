package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleMenu() *MenuResult {
	return &MenuResult{
		Summary: MenuSummary{TotalPackages: 3, UpgradablePackages: 2, Groups: 2},
		Groups: []MenuGroup{
			{Key: "mismatch", Title: "Update package.json to match version installed.", Packages: []MenuPackage{
				{Name: "left-pad", Current: "1.1.0", Latest: "1.0.0", Short: "left-pad@1.0.0"},
			}},
			{Key: "major", Title: "Major Update", Packages: []MenuPackage{
				{Name: "rimraf", Current: "2.0.0", Latest: "3.0.0", Link: "https://example.com/<rimraf>", DevDependency: true, Short: "rimraf@3.0.0"},
			}},
		},
	}
}

// TestParseFormat tests the behavior of ParseFormat.
//
// It verifies:
//   - Parses valid format strings case-insensitively
//   - Returns FormatTable for unrecognized formats
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"xml", FormatXML},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
		{"table", FormatTable},
		{"", FormatTable},
		{"unknown", FormatTable},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFormat(tt.input))
		})
	}
}

// TestIsStructuredFormat tests the behavior of IsStructuredFormat.
func TestIsStructuredFormat(t *testing.T) {
	assert.True(t, IsStructuredFormat(FormatCSV))
	assert.True(t, IsStructuredFormat(FormatJSON))
	assert.True(t, IsStructuredFormat(FormatXML))
	assert.True(t, IsStructuredFormat(FormatYAML))
	assert.False(t, IsStructuredFormat(FormatTable))
}

// TestWriteMenuResultJSON tests JSON menu output.
//
// It verifies:
//   - Groups keep their order
//   - HTML characters are not escaped
func TestWriteMenuResultJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMenuResult(&buf, FormatJSON, sampleMenu()))

	assert.Contains(t, buf.String(), "https://example.com/<rimraf>")

	var decoded MenuResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Groups, 2)
	assert.Equal(t, "mismatch", decoded.Groups[0].Key)
	assert.Equal(t, "major", decoded.Groups[1].Key)
	assert.Equal(t, 2, decoded.Summary.UpgradablePackages)
}

// TestWriteMenuResultYAML tests YAML menu output.
func TestWriteMenuResultYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMenuResult(&buf, FormatYAML, sampleMenu()))

	var decoded MenuResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Groups, 2)
	assert.Equal(t, "rimraf", decoded.Groups[1].Packages[0].Name)
	assert.True(t, decoded.Groups[1].Packages[0].DevDependency)
}

// TestWriteMenuResultXML tests XML menu output.
func TestWriteMenuResultXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMenuResult(&buf, FormatXML, sampleMenu()))

	out := buf.String()
	assert.Contains(t, out, "<?xml")
	assert.Contains(t, out, "<menuResult>")
	assert.Contains(t, out, `<group key="mismatch">`)
}

// TestWriteMenuResultCSV tests CSV menu output.
func TestWriteMenuResultCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMenuResult(&buf, FormatCSV, sampleMenu()))

	assert.Equal(t,
		"GROUP,NAME,CURRENT,LATEST,LINK,DEV,MISSING\n"+
			"mismatch,left-pad,1.1.0,1.0.0,,false,false\n"+
			"major,rimraf,2.0.0,3.0.0,https://example.com/<rimraf>,true,false\n",
		buf.String())
}

// TestWriteMenuResultUnsupported tests the unsupported format path.
func TestWriteMenuResultUnsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteMenuResult(&buf, FormatTable, sampleMenu()))
}

// TestWriteSelectionResult tests selection output.
//
// It verifies:
//   - JSON includes commands
//   - CSV lists selected packages only
//   - Table format is unsupported
func TestWriteSelectionResult(t *testing.T) {
	result := &SelectionResult{
		Selected: []MenuPackage{{Name: "rimraf", Latest: "3.0.0", Short: "rimraf@3.0.0"}},
		Commands: []string{"npm install --save rimraf@^3.0.0"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSelectionResult(&buf, FormatJSON, result))
	assert.Contains(t, buf.String(), `"commands":["npm install --save rimraf@^3.0.0"]`)

	buf.Reset()
	require.NoError(t, WriteSelectionResult(&buf, FormatCSV, result))
	assert.Equal(t, "NAME,LATEST,DEV,SHORT\nrimraf,3.0.0,false,rimraf@3.0.0\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteSelectionResult(&buf, FormatXML, result))
	assert.Contains(t, buf.String(), "<command>npm install --save rimraf@^3.0.0</command>")

	buf.Reset()
	require.NoError(t, WriteSelectionResult(&buf, FormatYAML, result))
	assert.Contains(t, buf.String(), "commands:")

	assert.Error(t, WriteSelectionResult(&buf, FormatTable, result))
}
