package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ajxudir/depcheck/pkg/display"
	"github.com/ajxudir/depcheck/pkg/interactive"
	"github.com/ajxudir/depcheck/pkg/output"
	"github.com/spf13/cobra"
)

var (
	listTypeFlag    string
	listConfigFlag  string
	listOutputFlag  string
	listFormatFlag  string
	listThemeFlag   string
	listNoColorFlag bool
)

var listCmd = &cobra.Command{
	Use:     "list [report]",
	Aliases: []string{"ls"},
	Short:   "Show the grouped update menu without prompting",
	Long: `Read a dependency check report and print the grouped menu the select
command would offer. The report is read from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listTypeFlag, "type", "t", "all", "Filter by type: all,prod,dev")
	listCmd.Flags().StringVarP(&listConfigFlag, "config", "c", "", "Config file path")
	listCmd.Flags().StringVarP(&listOutputFlag, "output", "o", "", "Output format: json, csv, xml, yaml (default: table)")
	listCmd.Flags().StringVarP(&listFormatFlag, "format", "f", "", "Report format: json, yaml (default: from extension)")
	listCmd.Flags().StringVar(&listThemeFlag, "theme", "", "Color theme: auto, dark, light, none")
	listCmd.Flags().BoolVar(&listNoColorFlag, "no-color", false, "Disable colors")
}

// runList executes the list command to print the grouped menu.
//
// It performs the following operations:
//   - Step 1: Loads configuration and the report
//   - Step 2: Builds the menu for the requested dependency type
//   - Step 3: Prints the menu, the up-to-date message, or structured output
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Optional report path
//
// Returns:
//   - error: Returns error on config, report or output failure
func runList(cmd *cobra.Command, args []string) error {
	outputFormat := output.ParseFormat(listOutputFlag)

	collector, restoreWarnings := collectWarnings()
	defer restoreWarnings()

	cfg, err := loadAndValidateConfig(listConfigFlag, workingDir())
	if err != nil {
		return err
	}

	records, err := loadRecords(args, listFormatFlag)
	if err != nil {
		return err
	}

	menu, err := buildMenu(records, listTypeFlag, cfg)
	if err != nil {
		return err
	}

	if output.IsStructuredFormat(outputFormat) {
		result := menu.Result(len(records))
		result.Warnings = commandWarnings(collector, cfg)
		return output.WriteMenuResult(os.Stdout, outputFormat, result)
	}

	theme, err := resolveTheme(listThemeFlag, listNoColorFlag, cfg)
	if err != nil {
		return err
	}

	if menu.Empty() {
		display.PrintUpToDate(os.Stdout)
	} else {
		printMenu(os.Stdout, menu, theme)
	}
	display.PrintWarnings(os.Stdout, commandWarnings(collector, cfg))
	return nil
}

// printMenu writes the menu entries the way the prompt lays them out,
// without the cursor and check boxes.
func printMenu(w io.Writer, menu interactive.Menu, theme *display.Theme) {
	table := interactive.NewTable()
	for _, e := range menu.Entries {
		switch {
		case e.Choice != nil:
			_, _ = fmt.Fprintf(w, "  %s\n", theme.PaintRow(e.Choice.Row, table))
		case e.Separator.IsBlank():
			_, _ = fmt.Fprintln(w)
		default:
			_, _ = fmt.Fprintf(w, "  %s\n", theme.Paint(e.Separator.Title))
		}
	}
}
