// Package verbose provides debug logging for the --verbose flag.
//
// Messages go through a logrus logger whose formatter writes one
// "[DEBUG] message" line per entry, followed by any fields as key=value pairs
// in sorted order.
package verbose

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	logger "github.com/sirupsen/logrus"
)

var (
	mu      sync.RWMutex
	enabled bool
	log     = newLogger(os.Stderr)
)

// newLogger creates the debug logger writing to w.
func newLogger(w io.Writer) *logger.Logger {
	l := logger.New()
	l.SetOutput(w)
	l.SetLevel(logger.DebugLevel)
	l.SetFormatter(&debugFormatter{})
	return l
}

// debugFormatter renders entries as "[DEBUG] message key=value ...".
type debugFormatter struct{}

// Format implements logger.Formatter.
func (f *debugFormatter) Format(entry *logger.Entry) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("[DEBUG] ")
	sb.WriteString(strings.TrimRight(entry.Message, "\n"))

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}

	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

// Enable turns on verbose logging and allows debug messages to be printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to true
//   - Releases the write lock
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		log.SetOutput(w)
	}
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if IsEnabled() {
		log.Debugf(format, args...)
	}
}

// Info prints an informational verbose message if enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	if IsEnabled() {
		log.Debug(msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
func Infof(format string, args ...any) {
	if IsEnabled() {
		log.Debugf(format, args...)
	}
}

// Fields prints a message with structured key=value pairs if enabled.
//
// String values longer than 60 characters are truncated.
//
// Parameters:
//   - msg: The message string to print
//   - fields: Values appended to the line in key order
func Fields(msg string, fields map[string]any) {
	if !IsEnabled() {
		return
	}
	data := make(logger.Fields, len(fields))
	for k, v := range fields {
		if s, ok := v.(string); ok {
			v = truncate(s, 60)
		}
		data[k] = v
	}
	log.WithFields(data).Debug(msg)
}

// ConfigLoaded logs configuration loading details if enabled.
//
// Parameters:
//   - path: The file path to the main configuration file that was loaded
//   - extended: Paths of configuration files that were extended, in application order
func ConfigLoaded(path string, extended []string) {
	if !IsEnabled() {
		return
	}
	log.Debugf("Config loaded: %s", path)
	if len(extended) > 0 {
		log.Debugf("Config extends: %v", extended)
	}
}

// PackageFiltered logs when a package is filtered out if enabled.
//
// Parameters:
//   - name: The name of the package that was filtered
//   - reason: The reason why the package was filtered out
func PackageFiltered(name, reason string) {
	if IsEnabled() {
		log.Debugf("Package '%s' filtered: %s", name, reason)
	}
}

// truncate shortens a string to the specified maximum length.
//
// Returns:
//   - string: The original or truncated string with "..." suffix if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
