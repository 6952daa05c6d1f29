// Package logging provides concrete implementations of the tabload.Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	warnPrefix  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// ConsoleLogger writes log messages to a writer, stderr by default.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	color   bool
	out     io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr, verbose, false)
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to out. With color set,
// the warning and error prefixes are styled for a terminal.
func NewConsoleLoggerTo(out io.Writer, verbose, color bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		color:   color,
		out:     out,
	}
}

// Verbose logs progress details if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Warn logs non-fatal diagnostics.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write(l.style(warnPrefix, "[WARNING]")+" ", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.style(errorPrefix, "[ERROR]")+" ", format, args)
}

func (l *ConsoleLogger) style(s lipgloss.Style, prefix string) string {
	if !l.color {
		return prefix
	}
	return s.Render(prefix)
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.out, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.out, prefix+format+"\n")
	}
}
