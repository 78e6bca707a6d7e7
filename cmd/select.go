package cmd

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/signal"

	"github.com/ajxudir/depcheck/pkg/config"
	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/display"
	"github.com/ajxudir/depcheck/pkg/errors"
	"github.com/ajxudir/depcheck/pkg/formats"
	"github.com/ajxudir/depcheck/pkg/interactive"
	"github.com/ajxudir/depcheck/pkg/output"
	"github.com/ajxudir/depcheck/pkg/prompt"
	"github.com/ajxudir/depcheck/pkg/verbose"
	"github.com/spf13/cobra"
)

var (
	selectTypeFlag      string
	selectInstallerFlag string
	selectSaveExactFlag bool
	selectGlobalFlag    bool
	selectConfigFlag    string
	selectOutputFlag    string
	selectFormatFlag    string
	selectThemeFlag     string
	selectNoColorFlag   bool
)

// runPromptFunc shows the checkbox prompt. Replaced in tests.
var runPromptFunc = func(ctx context.Context, c prompt.Checkbox) ([]formats.Record, error) {
	return c.Run(ctx)
}

// pageSizeFunc returns the number of prompt rows for the terminal on stdout.
var pageSizeFunc = func(margin int) int {
	return prompt.TerminalPageSize(int(os.Stdout.Fd()), margin)
}

var selectCmd = &cobra.Command{
	Use:   "select [report]",
	Short: "Choose which packages to update",
	Long: `Read a dependency check report, show the grouped menu as a checkbox
prompt, and print the installer commands for the chosen packages.
The report is read from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().StringVarP(&selectTypeFlag, "type", "t", "all", "Filter by type: all,prod,dev")
	selectCmd.Flags().StringVar(&selectInstallerFlag, "installer", "", "Installer for printed commands: npm, yarn (default: from config)")
	selectCmd.Flags().BoolVarP(&selectSaveExactFlag, "save-exact", "E", false, "Pin exact versions instead of caret ranges")
	selectCmd.Flags().BoolVarP(&selectGlobalFlag, "global", "g", false, "Write global install commands")
	selectCmd.Flags().StringVarP(&selectConfigFlag, "config", "c", "", "Config file path")
	selectCmd.Flags().StringVarP(&selectOutputFlag, "output", "o", "", "Output format: json, csv, xml, yaml (default: table)")
	selectCmd.Flags().StringVarP(&selectFormatFlag, "format", "f", "", "Report format: json, yaml (default: from extension)")
	selectCmd.Flags().StringVar(&selectThemeFlag, "theme", "", "Color theme: auto, dark, light, none")
	selectCmd.Flags().BoolVar(&selectNoColorFlag, "no-color", false, "Disable colors")
}

// runSelect executes the select command.
//
// It performs the following operations:
//   - Step 1: Loads configuration and the report, and builds the menu
//   - Step 2: Prints the up-to-date message and stops when the menu is empty
//   - Step 3: Runs the checkbox prompt until confirm or cancel
//   - Step 4: Prints the install plan for the selection
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Optional report path
//
// Returns:
//   - error: ExitError with ExitCanceled when the prompt is canceled; other errors on load failure
func runSelect(cmd *cobra.Command, args []string) error {
	outputFormat := output.ParseFormat(selectOutputFlag)

	collector, restoreWarnings := collectWarnings()
	defer restoreWarnings()

	cfg, err := loadAndValidateConfig(selectConfigFlag, workingDir())
	if err != nil {
		return err
	}
	applySelectFlags(cmd, cfg)
	if result := cfg.Validate(); result.HasErrors() {
		return errors.NewExitErrorf(errors.ExitConfigError, "%s", result.ErrorMessages())
	}

	records, err := loadRecords(args, selectFormatFlag)
	if err != nil {
		return err
	}

	menu, err := buildMenu(records, selectTypeFlag, cfg)
	if err != nil {
		return err
	}

	theme, err := resolveTheme(selectThemeFlag, selectNoColorFlag, cfg)
	if err != nil {
		return err
	}

	if menu.Empty() {
		verbose.Info("Nothing to select, skipping prompt")
		if output.IsStructuredFormat(outputFormat) {
			result := interactive.SelectionResult(nil, interactive.Plan{})
			result.Warnings = commandWarnings(collector, cfg)
			return output.WriteSelectionResult(os.Stdout, outputFormat, result)
		}
		display.PrintUpToDate(os.Stdout)
		display.PrintWarnings(os.Stdout, commandWarnings(collector, cfg))
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	// Keep stdout clean for structured output
	promptOutput := io.Writer(os.Stdout)
	if output.IsStructuredFormat(outputFormat) {
		promptOutput = os.Stderr
	}

	selected, err := runPromptFunc(ctx, prompt.Checkbox{
		Message:  constants.MessageChoose,
		Entries:  menu.Entries,
		PageSize: pageSizeFunc(cfg.GetPageMargin()),
		Theme:    theme,
		Output:   promptOutput,
	})
	if err != nil {
		if stderrors.Is(err, prompt.ErrCanceled) {
			verbose.Info("Prompt canceled")
			return errors.NewExitError(errors.ExitCanceled, err)
		}
		return err
	}

	plan := interactive.BuildPlan(selected, interactive.PlanOptions{
		Installer: cfg.GetInstaller(),
		SaveExact: cfg.SaveExact,
		Global:    cfg.Global,
	})
	verbose.Printf("Selected: %s", plan.Summary())

	if output.IsStructuredFormat(outputFormat) {
		result := interactive.SelectionResult(selected, plan)
		result.Warnings = commandWarnings(collector, cfg)
		return output.WriteSelectionResult(os.Stdout, outputFormat, result)
	}

	if plan.IsEmpty() {
		display.PrintNoneSelected(os.Stdout)
	} else {
		display.PrintPlan(os.Stdout, plan.Commands())
	}
	display.PrintWarnings(os.Stdout, commandWarnings(collector, cfg))
	return nil
}

// applySelectFlags overrides configuration values with the flags the user set.
func applySelectFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("installer") {
		cfg.Installer = selectInstallerFlag
	}
	if cmd.Flags().Changed("save-exact") {
		cfg.SaveExact = selectSaveExactFlag
	}
	if cmd.Flags().Changed("global") {
		cfg.Global = selectGlobalFlag
	}
}
