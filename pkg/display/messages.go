package display

import (
	"fmt"
	"io"

	"github.com/ajxudir/depcheck/pkg/constants"
)

// PrintUpToDate prints the status line shown instead of the prompt.
//
// Example output:
//
//	All dependencies are up to date!
func PrintUpToDate(w io.Writer) {
	_, _ = fmt.Fprintln(w, constants.MessageUpToDate)
}

// PrintNoneSelected prints the message for a confirmed empty selection.
func PrintNoneSelected(w io.Writer) {
	_, _ = fmt.Fprintln(w, constants.MessageNoneSelected)
}

// PrintWarnings prints warning messages to the writer.
//
// Formats each warning on its own line with a warning icon prefix.
// Does nothing if warnings slice is empty.
// Prints a blank line before the warnings for separation.
func PrintWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconWarn, warning)
	}
}

// PrintPlan prints the installer commands for a selection.
//
// Does nothing if commands is empty.
//
// Example output:
//
//	To update the selected packages, run:
//
//	  npm install --save rimraf@^3.0.0
func PrintPlan(w io.Writer, commands []string) {
	if len(commands) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w, "To update the selected packages, run:")
	_, _ = fmt.Fprintln(w)
	for _, c := range commands {
		_, _ = fmt.Fprintf(w, "  %s\n", c)
	}
}
