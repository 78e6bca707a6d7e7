package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ajxudir/depcheck/pkg/display"
	"github.com/ajxudir/depcheck/pkg/formats"
	"github.com/ajxudir/depcheck/pkg/interactive"
	"github.com/ajxudir/depcheck/pkg/utils"
	"github.com/ajxudir/depcheck/pkg/verbose"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrCanceled is returned when the operator cancels the prompt.
var ErrCanceled = errors.New("prompt canceled")

// MinPageSize is the smallest number of entries shown at once.
const MinPageSize = 5

// DefaultPageSize is used when the terminal height cannot be determined.
const DefaultPageSize = 20

// Checkbox is a multi-select prompt over menu entries.
//
// Fields:
//   - Message: Question shown above the list
//   - Entries: Menu entries in display order
//   - PageSize: Number of entries visible at once
//   - Theme: Theme used to paint rows; nil renders plain text
//   - Input: Key input; nil uses stdin, or the controlling TTY when stdin is redirected
//   - Output: Render target; nil uses stdout
type Checkbox struct {
	Message  string
	Entries  []interactive.Entry
	PageSize int
	Theme    *display.Theme
	Input    io.Reader
	Output   io.Writer
}

// Run shows the prompt and waits for the operator.
//
// It performs the following operations:
//   - Step 1: Builds the model with the cursor on the first choice
//   - Step 2: Runs the bubbletea program until confirm, cancel or ctx is done
//   - Step 3: Returns the records of the checked choices
//
// Parameters:
//   - ctx: Cancels the prompt when done
//
// Returns:
//   - []formats.Record: Selected records in display order; empty when nothing was checked
//   - error: ErrCanceled on Ctrl+C, Esc or context cancellation; other errors when the terminal fails
func (c Checkbox) Run(ctx context.Context) ([]formats.Record, error) {
	model := NewModel(c.Message, c.Entries, c.PageSize, c.Theme)
	if model.Cursor() < 0 {
		return nil, nil
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	switch {
	case c.Input != nil:
		opts = append(opts, tea.WithInput(c.Input))
	case !IsTerminal(int(os.Stdin.Fd())):
		// The report may have arrived on stdin; read keys from the terminal
		verbose.Info("Stdin is not a terminal, reading keys from the controlling TTY")
		opts = append(opts, tea.WithInputTTY())
	}
	if c.Output != nil {
		opts = append(opts, tea.WithOutput(c.Output))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
		}
		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	result, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("prompt failed: unexpected model %T", final)
	}
	if result.Canceled() {
		return nil, ErrCanceled
	}

	selected := result.Selected()
	verbose.Printf("Prompt confirmed with %d selected", len(selected))
	return selected, nil
}

// PageSize returns the number of entries shown for a terminal height.
//
// Parameters:
//   - rows: Terminal height in rows
//   - margin: Rows kept free for the question and the cursor line
//
// Returns:
//   - int: rows - margin, at least MinPageSize
func PageSize(rows, margin int) int {
	return utils.Max(rows-margin, MinPageSize)
}

// terminalSizeFunc reports the size of the terminal on fd. Replaced in tests.
var terminalSizeFunc = term.GetSize

// TerminalPageSize returns the page size for the terminal on fd.
//
// Returns:
//   - int: PageSize of the terminal height, or DefaultPageSize when fd is not a terminal
func TerminalPageSize(fd int, margin int) int {
	_, rows, err := terminalSizeFunc(fd)
	if err != nil || rows <= 0 {
		verbose.Printf("Terminal height unavailable, using page size %d", DefaultPageSize)
		return DefaultPageSize
	}
	return PageSize(rows, margin)
}

// IsTerminal reports whether fd is a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
