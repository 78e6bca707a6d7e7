package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajxudir/depcheck/pkg/formats"
	"github.com/ajxudir/depcheck/pkg/prompt"
	"github.com/stretchr/testify/require"
)

// sampleReportJSON has one up-to-date package and one package in each of
// the missing, minor and major groups.
const sampleReportJSON = `[
  {"moduleName": "express", "installed": "4.18.2", "latest": "4.18.2"},
  {"moduleName": "rimraf", "installed": "2.7.1", "latest": "5.0.5", "bump": "major", "homepage": "https://github.com/isaacs/rimraf"},
  {"moduleName": "jest", "installed": "29.5.0", "latest": "29.7.0", "bump": "minor", "devDependency": true},
  {"moduleName": "lodash", "latest": "4.17.21", "notInstalled": true}
]`

const upToDateReportJSON = `[
  {"moduleName": "express", "installed": "4.18.2", "latest": "4.18.2"}
]`

// writeTempFile writes content to name inside a fresh temp dir and returns the path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// setupCommandTest replaces injected functions with test doubles and
// resets every command flag. Everything is restored when the test ends.
func setupCommandTest(t *testing.T) {
	t.Helper()

	oldTerminal := isTerminalFunc
	oldPrompt := runPromptFunc
	oldPageSize := pageSizeFunc
	oldLoadConfig := loadConfigFunc
	oldReadFile := readFileFunc
	oldWriteFile := writeFileFunc
	oldLoadReport := loadReportFunc
	oldStdin := stdinReader

	isTerminalFunc = func(int) bool { return false }
	pageSizeFunc = func(int) int { return 20 }
	runPromptFunc = func(context.Context, prompt.Checkbox) ([]formats.Record, error) {
		t.Fatal("prompt should not run")
		return nil, nil
	}
	resetCommandFlags()

	t.Cleanup(func() {
		isTerminalFunc = oldTerminal
		runPromptFunc = oldPrompt
		pageSizeFunc = oldPageSize
		loadConfigFunc = oldLoadConfig
		readFileFunc = oldReadFile
		writeFileFunc = oldWriteFile
		loadReportFunc = oldLoadReport
		stdinReader = oldStdin
		resetCommandFlags()
	})
}

// resetCommandFlags restores flag variables to their defaults.
func resetCommandFlags() {
	listTypeFlag = "all"
	listConfigFlag = ""
	listOutputFlag = ""
	listFormatFlag = ""
	listThemeFlag = ""
	listNoColorFlag = false

	selectTypeFlag = "all"
	selectInstallerFlag = ""
	selectSaveExactFlag = false
	selectGlobalFlag = false
	selectConfigFlag = ""
	selectOutputFlag = ""
	selectFormatFlag = ""
	selectThemeFlag = ""
	selectNoColorFlag = false

	configShowDefaultsFlag = false
	configShowEffectiveFlag = false
	configInitFlag = false
	configValidateFlag = false
	configPathFlag = ""

	versionFormatFlag = "table"
	versionFlag = false
}

// choicesNamed returns the records of the checkbox choices with the given names.
func choicesNamed(c prompt.Checkbox, names ...string) []formats.Record {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var out []formats.Record
	for _, e := range c.Entries {
		if e.Choice != nil && want[e.Choice.Record.Name] {
			out = append(out, e.Choice.Record)
		}
	}
	return out
}
