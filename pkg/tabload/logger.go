package tabload

// Logger is the console reporter used while loading and merging.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs progress details: per-file import summaries, counts,
	// policy notices. Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	// Always logged regardless of verbose mode.
	Info(format string, args ...interface{})

	// Warn logs non-fatal diagnostics, such as the consistency report under
	// the warning policy. Always logged regardless of verbose mode.
	Warn(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}
