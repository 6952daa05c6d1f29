package tabload

import (
	"errors"
	"fmt"
	"strings"
)

// Policy selects how schema drift across merged files is handled.
type Policy int

const (
	PolicyError   Policy = iota // Fail when any file disagrees with the reference schema
	PolicyWarning               // Report drift as a warning, then merge anyway
	PolicyIgnore                // Skip the check and merge
)

// String returns the configuration spelling of the Policy.
func (p Policy) String() string {
	switch p {
	case PolicyError:
		return "error"
	case PolicyWarning:
		return "warning"
	case PolicyIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsValid returns true if the Policy is a valid, defined value.
func (p Policy) IsValid() bool {
	return p >= PolicyError && p <= PolicyIgnore
}

// ParsePolicy parses "error", "warning" or "ignore" (case-insensitive,
// surrounding whitespace ignored). Empty input yields the default PolicyError.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return PolicyError, nil
	case "warning":
		return PolicyWarning, nil
	case "ignore":
		return PolicyIgnore, nil
	default:
		return PolicyError, fmt.Errorf("column consistency must be one of: 'error', 'warning', 'ignore' (got %q): %w", s, ErrInvalidConfig)
	}
}

// LoadConfig contains all parameters needed for a load operation.
type LoadConfig struct {
	// Path is a single CSV/XLSX/XLS file or a directory of them
	Path string

	// Recursive includes files from subdirectories when Path is a directory
	Recursive bool

	// Verbose enables per-file and summary diagnostics
	Verbose bool

	// Policy controls the column consistency check for directory merges
	Policy Policy
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Path) == "" {
		errs = append(errs, fmt.Errorf("Path is required: %w", ErrInvalidConfig))
	}

	if !c.Policy.IsValid() {
		errs = append(errs, fmt.Errorf("unknown column consistency policy %s: %w", c.Policy, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// DiscoveredFile is a candidate data file found under a merge root.
// Paths use the host separator; Name is the base file name.
type DiscoveredFile struct {
	Path         string
	RelativePath string
	Name         string
	Extension    string // lower-case, with leading dot
	SizeBytes    int64
}

// LoadedFile pairs a loaded Table with the file it came from.
// Name is kept for diagnostics only and never reaches the merged result.
type LoadedFile struct {
	Name  string
	Path  string
	Table *Table
}

// ConsistencyIssue describes one file whose columns disagree with the
// reference file. Expected is nil for column count mismatches.
type ConsistencyIssue struct {
	File     string
	Issue    string
	Columns  []string
	Expected []string
}

// ConsistencyReport is the immutable outcome of comparing every loaded file
// against the first one.
type ConsistencyReport struct {
	ReferenceFile    string
	ReferenceColumns []string
	Issues           []ConsistencyIssue
}

// OK reports whether no issues were found.
func (r ConsistencyReport) OK() bool {
	return len(r.Issues) == 0
}

// Message composes the human-readable multi-line report. It returns an empty
// string when there are no issues.
func (r ConsistencyReport) Message() string {
	if r.OK() {
		return ""
	}

	var b strings.Builder
	b.WriteString("Column consistency issues found:\n")
	fmt.Fprintf(&b, "Reference file: %s (columns: %s)\n\n", r.ReferenceFile, formatColumns(r.ReferenceColumns))

	for _, issue := range r.Issues {
		fmt.Fprintf(&b, "File: %s\n", issue.File)
		fmt.Fprintf(&b, "Issue: %s\n", issue.Issue)
		if issue.Expected != nil {
			fmt.Fprintf(&b, "Expected columns: %s\n", formatColumns(issue.Expected))
		}
		fmt.Fprintf(&b, "Actual columns: %s\n\n", formatColumns(issue.Columns))
	}

	return strings.TrimSpace(b.String())
}

func formatColumns(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = "'" + c + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// FileDiscoverer enumerates candidate data files under a root directory.
type FileDiscoverer interface {
	// Discover returns supported files under root in listing order.
	// Non-recursive discovery inspects direct children only.
	Discover(root string, recursive bool) ([]DiscoveredFile, error)
}

// TableReader loads one file into an in-memory Table.
type TableReader interface {
	// Load dispatches on the file extension. Unknown extensions fail with
	// ErrUnsupportedFormat.
	Load(path string) (*Table, error)
}
