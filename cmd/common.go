package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajxudir/depcheck/pkg/config"
	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/display"
	"github.com/ajxudir/depcheck/pkg/errors"
	"github.com/ajxudir/depcheck/pkg/filtering"
	"github.com/ajxudir/depcheck/pkg/formats"
	"github.com/ajxudir/depcheck/pkg/interactive"
	"github.com/ajxudir/depcheck/pkg/prompt"
	"github.com/ajxudir/depcheck/pkg/verbose"
	"github.com/ajxudir/depcheck/pkg/warnings"
	"github.com/charmbracelet/lipgloss"
)

var (
	loadConfigFunc = config.LoadConfig
	writeFileFunc  = os.WriteFile
	readFileFunc   = os.ReadFile
	loadReportFunc = formats.LoadReport
	isTerminalFunc = prompt.IsTerminal
)

// stdinReader is where a report named "-" is read from. Replaced in tests.
var stdinReader io.Reader = os.Stdin

// loadAndValidateConfig loads the configuration and validates it for unknown fields.
//
// The file checked is the one named by configPath, or .depcheck.yml in
// workDir when it exists. Strict validation runs before loading so typos
// are reported with line numbers instead of being silently ignored.
//
// Parameters:
//   - configPath: Path to custom config file, or empty for default location
//   - workDir: Working directory to search for default config
//
// Returns:
//   - *config.Config: Loaded and validated configuration
//   - error: ExitError with ExitConfigError on read, validation or load failure
func loadAndValidateConfig(configPath, workDir string) (*config.Config, error) {
	checkPath := configPath
	if checkPath == "" {
		checkPath = filepath.Join(workDir, config.LocalConfigName)
	}

	data, err := readFileFunc(checkPath)
	switch {
	case err != nil && configPath != "":
		return nil, errors.NewExitError(errors.ExitConfigError,
			fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	case err == nil:
		if result := config.ValidateConfigFile(data); result.HasErrors() {
			var b strings.Builder
			fmt.Fprintf(&b, "configuration validation failed for %s:\n", checkPath)
			for _, e := range result.Errors {
				fmt.Fprintf(&b, "  - %s\n", e.Error())
			}
			fmt.Fprintf(&b, "\n%s Run 'depcheck config --validate' for details", constants.IconLightbulb)
			verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, checkPath)
			return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("%s", b.String()))
		}
	}

	cfg, err := loadConfigFunc(configPath, workDir)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load config: %w", err))
	}

	return cfg, nil
}

// reportPath returns the report argument, or "-" for stdin.
func reportPath(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "-"
	}
	return args[0]
}

// loadRecords reads the dependency check report named by args.
//
// It performs the following operations:
//   - Step 1: Reads the file, or stdin when no file is named
//   - Step 2: Decodes records in the requested format
//   - Step 3: Logs each record when verbose output is on
//   - Step 4: Writes report warnings to the warning writer
//
// Parameters:
//   - args: Positional arguments; the first is the report path
//   - format: Report format ("json" or "yaml"); empty selects one from the extension
//
// Returns:
//   - []formats.Record: Records in report order
//   - error: ExitError with ExitConfigError when the report cannot be read or decoded
func loadRecords(args []string, format string) ([]formats.Record, error) {
	path := reportPath(args)
	records, err := loadReportFunc(path, format, stdinReader)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, err)
	}

	verbose.Infof("Loaded %d record(s) from %s", len(records), path)
	if verbose.IsEnabled() {
		for _, r := range records {
			verbose.Fields("Record "+r.Name, map[string]any{
				"installed": r.Installed,
				"latest":    r.Latest,
				"bump":      r.Bump.String(),
				"mismatch":  r.Mismatch,
				"missing":   r.NotInstalled,
				"dev":       r.DevDependency,
			})
		}
	}

	if n := warnings.CheckRecords(records); n > 0 {
		verbose.Infof("Report has %d warning(s)", n)
	}
	return records, nil
}

// buildMenu narrows the records by dependency type and assembles the menu.
//
// Parameters:
//   - records: Report records
//   - typeFlag: "all", "prod" or "dev"
//   - cfg: Configuration supplying hidden groups
//
// Returns:
//   - interactive.Menu: The grouped choice list
//   - error: ExitError with ExitConfigError for an invalid type
func buildMenu(records []formats.Record, typeFlag string, cfg *config.Config) (interactive.Menu, error) {
	filter, err := filtering.FromTypeFlag(typeFlag)
	if err != nil {
		return interactive.Menu{}, errors.NewExitError(errors.ExitConfigError, err)
	}
	if !filter.IsEmpty() {
		verbose.Infof("Applying filter: %s", filter)
		records = filtering.Select(records, filter)
	}

	return interactive.BuildChoiceList(records, interactive.VisibleGroups(cfg.HideGroups)), nil
}

// collectWarnings installs a collector as the warning writer.
//
// Returns:
//   - *warnings.Collector: Receives warnings until restore is called
//   - func(): Restores the previous warning writer
func collectWarnings() (*warnings.Collector, func()) {
	c := &warnings.Collector{}
	return c, warnings.SetWarningWriter(c)
}

// commandWarnings returns the collected report warnings followed by one
// line per section the configuration hides.
func commandWarnings(c *warnings.Collector, cfg *config.Config) []string {
	msgs := c.Messages()
	for _, key := range cfg.HideGroups {
		msgs = append(msgs, fmt.Sprintf("Group %q is hidden by configuration", key))
	}
	return msgs
}

// resolveTheme picks the theme for terminal output.
//
// Priority order:
//  1. Plain when --no-color is set or stdout is not a terminal
//  2. The --theme flag value
//  3. The configured theme
//
// The chosen name is checked even when output ends up plain.
//
// Parameters:
//   - flagValue: Value of --theme, or empty
//   - noColor: Value of --no-color
//   - cfg: Loaded configuration
//
// Returns:
//   - *display.Theme: The theme bound to stdout
//   - error: ExitError with ExitConfigError for an unknown theme name
func resolveTheme(flagValue string, noColor bool, cfg *config.Config) (*display.Theme, error) {
	name := cfg.GetTheme()
	if flagValue != "" {
		name = flagValue
	}

	theme, err := display.NewTheme(name, lipgloss.NewRenderer(os.Stdout))
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, err)
	}

	if noColor || !isTerminalFunc(int(os.Stdout.Fd())) {
		verbose.Printf("Color disabled (no-color=%v)", noColor)
		return display.PlainTheme(), nil
	}

	verbose.Printf("Using theme %s", theme.Name())
	return theme, nil
}

// workingDir returns the current directory, or "." when it cannot be determined.
func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
