package tabload

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	table, err := loader.Load(path)
//	if errors.Is(err, tabload.ErrSchemaMismatch) {
//	    // Files disagree on their columns
//	}
var (
	// ErrNotFound indicates the requested path does not exist.
	ErrNotFound = errors.New("path not found")

	// ErrInvalidPath indicates the path exists but is neither a regular file nor a directory.
	ErrInvalidPath = errors.New("path is neither a file nor a directory")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedFormat indicates a file extension outside CSV/XLSX/XLS.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoSupportedFiles indicates a directory without any CSV/XLSX/XLS files.
	ErrNoSupportedFiles = errors.New("no supported files (CSV, XLSX) found")

	// ErrNoLoadableFiles indicates every discovered file failed to load.
	ErrNoLoadableFiles = errors.New("no files could be successfully loaded")

	// ErrSchemaMismatch indicates the column consistency check failed.
	ErrSchemaMismatch = errors.New("column consistency issues found")

	// ErrExportFailed indicates writing the combined table to a sink failed.
	ErrExportFailed = errors.New("export failed")

	// ErrNotApproved indicates the user declined a destructive operation.
	ErrNotApproved = errors.New("operation not approved")
)

// SchemaMismatchError carries the consistency report that tripped the
// error policy. errors.Is(err, ErrSchemaMismatch) matches it.
type SchemaMismatchError struct {
	Report ConsistencyReport
}

// Error returns the composed multi-line report.
func (e *SchemaMismatchError) Error() string {
	return e.Report.Message()
}

// Unwrap lets errors.Is match ErrSchemaMismatch.
func (e *SchemaMismatchError) Unwrap() error {
	return ErrSchemaMismatch
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidPath):
		return ExitPathError
	case errors.Is(err, ErrUnsupportedFormat):
		return ExitUnsupportedFormat
	case errors.Is(err, ErrNoSupportedFiles):
		return ExitNoSupportedFiles
	case errors.Is(err, ErrNoLoadableFiles):
		return ExitNoLoadableFiles
	case errors.Is(err, ErrSchemaMismatch):
		return ExitSchemaMismatch
	case errors.Is(err, ErrExportFailed):
		return ExitExportFailed
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "unknown command") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.HasPrefix(errStr, "required flag") ||
		strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	return ExitGeneralError
}
