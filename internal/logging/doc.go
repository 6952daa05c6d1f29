// Package logging provides concrete implementations of the tabload.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed messages to stderr (or any io.Writer)
//   - NullLogger: Discards all messages (useful for testing)
//
// ConsoleLogger is the console reporter for load and merge diagnostics:
// per-file import summaries and counts go through Verbose, consistency
// warnings through Warn.
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
