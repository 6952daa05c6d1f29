package tabload

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Load completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration (e.g. unknown policy)
	ExitPathError         = 11 // Path missing, or neither file nor directory
	ExitUnsupportedFormat = 12 // File extension not CSV/XLSX/XLS
	ExitNoSupportedFiles  = 13 // Directory has no supported files
	ExitNoLoadableFiles   = 14 // Every discovered file failed to load
	ExitSchemaMismatch    = 15 // Column consistency check failed under the error policy
	ExitExportFailed      = 16 // Writing the combined table to a sink failed
)

// Supported file extensions, lower-case with leading dot.
const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
	ExtXLS  = ".xls"
)

const (
	// ConfigFileName is the optional project configuration file looked up in
	// the working directory.
	ConfigFileName = "tabload.yaml"

	// DefaultPreviewRows is the number of rows shown by the preview command.
	DefaultPreviewRows = 20

	// MaxErrorPreviewLength caps how much of an offending cell value is echoed
	// back in parse errors.
	MaxErrorPreviewLength = 200

	// DefaultReplaceCountdown is how long a non-interactive --replace waits
	// before dropping existing tables.
	DefaultReplaceCountdown = 3 * time.Second
)

// SupportedExtensions lists the extensions the discoverer accepts, in the
// order they are reported in help text.
var SupportedExtensions = []string{ExtCSV, ExtXLSX, ExtXLS}
