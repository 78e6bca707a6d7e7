package verbose

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture enables verbose output into a buffer for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetWriter(buf)
	t.Cleanup(Disable)
	return buf
}

// TestEnableDisable tests the behavior of Enable and Disable functions.
//
// It verifies:
//   - Disable sets enabled state to false
//   - Enable sets enabled state to true
//   - IsEnabled returns correct state
func TestEnableDisable(t *testing.T) {
	Disable()
	assert.False(t, IsEnabled())

	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

// TestSetWriter tests the behavior of SetWriter.
//
// It verifies:
//   - Writer can be set and messages are written to it
//   - nil writer parameter is ignored
//   - Verbose messages include [DEBUG] prefix
func TestSetWriter(t *testing.T) {
	buf := capture(t)

	Enable()
	Printf("test message")
	assert.Equal(t, "[DEBUG] test message\n", buf.String())

	SetWriter(nil)
	buf.Reset()
	Printf("another message")
	assert.Equal(t, "[DEBUG] another message\n", buf.String())
}

// TestPrintf tests the behavior of Printf.
//
// It verifies:
//   - No output when verbose is disabled
//   - Format string and arguments are properly interpolated
//   - A trailing newline in the format is not doubled
func TestPrintf(t *testing.T) {
	buf := capture(t)

	Disable()
	Printf("should not appear")
	assert.Empty(t, buf.String())

	Enable()
	Printf("test %s %d\n", "arg", 42)
	assert.Equal(t, "[DEBUG] test arg 42\n", buf.String())
}

// TestInfo tests the behavior of Info and Infof.
func TestInfo(t *testing.T) {
	buf := capture(t)

	Disable()
	Info("hidden")
	Infof("hidden %d", 1)
	assert.Empty(t, buf.String())

	Enable()
	Info("info message")
	Infof("info formatted %d", 123)
	assert.Contains(t, buf.String(), "[DEBUG] info message\n")
	assert.Contains(t, buf.String(), "[DEBUG] info formatted 123\n")
}

// TestFields tests the behavior of Fields.
//
// It verifies:
//   - Fields are printed in key order
//   - Long strings are truncated
func TestFields(t *testing.T) {
	buf := capture(t)

	Disable()
	Fields("hidden", map[string]any{"a": 1})
	assert.Empty(t, buf.String())

	Enable()
	Fields("Record", map[string]any{"name": "left-pad", "bump": "minor", "dev": true})
	assert.Equal(t, "[DEBUG] Record bump=minor dev=true name=left-pad\n", buf.String())

	buf.Reset()
	Fields("Long", map[string]any{"link": strings.Repeat("x", 100)})
	assert.Contains(t, buf.String(), "link="+strings.Repeat("x", 57)+"...")
}

// TestConfigLoaded tests the behavior of ConfigLoaded.
//
// It verifies:
//   - No output when disabled
//   - Extended paths are listed when present
func TestConfigLoaded(t *testing.T) {
	buf := capture(t)

	Disable()
	ConfigLoaded("/path/to/config.yml", nil)
	assert.Empty(t, buf.String())

	Enable()
	ConfigLoaded("/path/to/config.yml", []string{"default", "base"})
	output := buf.String()
	assert.Contains(t, output, "[DEBUG] Config loaded: /path/to/config.yml")
	assert.Contains(t, output, "Config extends: [default base]")

	buf.Reset()
	ConfigLoaded("/path/to/config.yml", nil)
	assert.NotContains(t, buf.String(), "extends")
}

// TestPackageFiltered tests the behavior of PackageFiltered.
func TestPackageFiltered(t *testing.T) {
	buf := capture(t)

	Disable()
	PackageFiltered("lodash", "up to date")
	assert.Empty(t, buf.String())

	Enable()
	PackageFiltered("lodash", "up to date")
	assert.Contains(t, buf.String(), "[DEBUG] Package 'lodash' filtered: up to date")
}

// TestTruncate tests the behavior of truncate.
func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "this is a l...", truncate("this is a long string", 14))
}
