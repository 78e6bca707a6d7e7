// Package warnings routes non-fatal report problems to a swappable writer.
//
// Commands install a Collector before reading a report and print the
// collected messages after the menu, so warnings never interleave with
// the prompt.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning line to the configured warning writer.
//
// Parameters:
//   - format: Printf-style format string; a trailing newline is added when missing
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()

	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = io.WriteString(w, msg)
}

// WarningWriter returns the currently configured warning writer.
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}

// Collector captures warnings for deferred output.
//
// Implements io.Writer so it can be installed with SetWarningWriter.
//
// Example:
//
//	collector := &warnings.Collector{}
//	restore := warnings.SetWarningWriter(collector)
//	defer restore()
//	// ... operations that may produce warnings ...
//	display.PrintWarnings(os.Stdout, collector.Messages())
type Collector struct {
	mu       sync.Mutex
	messages []string
}

// Write stores each non-empty trimmed line of p as one message.
func (c *Collector) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range strings.Split(string(p), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			c.messages = append(c.messages, trimmed)
		}
	}
	return len(p), nil
}

// Messages returns a copy of all collected warning messages.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]string, len(c.messages))
	copy(copied, c.messages)
	return copied
}
