package services

import (
	"fmt"

	"github.com/vvka-141/tabload/internal/consistency"
	"github.com/vvka-141/tabload/pkg/tabload"
)

// MergeResult is the outcome of a folder merge.
type MergeResult struct {
	Table   *tabload.Table
	Loaded  []string // file names that loaded, in discovery order
	Skipped []string // file names that failed to load
	Report  tabload.ConsistencyReport
}

// MergeCoordinator discovers, loads and concatenates every supported file
// under a directory. Files are loaded sequentially.
// Thread-Safety: safe for concurrent use if its collaborators are.
type MergeCoordinator struct {
	discoverer tabload.FileDiscoverer
	reader     tabload.TableReader
	logger     tabload.Logger
}

// NewMergeCoordinator creates a MergeCoordinator with all dependencies injected.
// Panics on nil dependencies.
func NewMergeCoordinator(discoverer tabload.FileDiscoverer, reader tabload.TableReader, logger tabload.Logger) *MergeCoordinator {
	if discoverer == nil {
		panic("discoverer cannot be nil")
	}
	if reader == nil {
		panic("reader cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &MergeCoordinator{discoverer: discoverer, reader: reader, logger: logger}
}

// MergeFolder merges all supported files under root into one table.
func (m *MergeCoordinator) MergeFolder(root string, recursive bool, policy tabload.Policy) (*tabload.Table, error) {
	result, err := m.Merge(root, recursive, policy)
	if err != nil {
		return nil, err
	}
	return result.Table, nil
}

// Merge runs discovery, loading, the policy-dependent consistency check and
// concatenation, returning the table together with per-file bookkeeping.
//
// Under PolicyError any drift returns *tabload.SchemaMismatchError before
// concatenation. PolicyWarning reports drift through Logger.Warn and merges
// every loaded file. PolicyIgnore merges without checking.
func (m *MergeCoordinator) Merge(root string, recursive bool, policy tabload.Policy) (*MergeResult, error) {
	if !policy.IsValid() {
		return nil, fmt.Errorf("unknown column consistency policy %s: %w", policy, tabload.ErrInvalidConfig)
	}

	files, skipped, err := m.LoadAll(root, recursive)
	if err != nil {
		return nil, err
	}

	result := &MergeResult{Skipped: skipped}

	if policy == tabload.PolicyIgnore {
		m.logger.Verbose("Column consistency check is skipped")
	} else {
		result.Report = consistency.Check(files)
		if !result.Report.OK() {
			if policy == tabload.PolicyError {
				return nil, &tabload.SchemaMismatchError{Report: result.Report}
			}
			m.logger.Warn("%s", result.Report.Message())
			m.logger.Verbose("WARNING: Column consistency issues detected but continuing...")
		}
	}

	tables := make([]*tabload.Table, len(files))
	result.Loaded = make([]string, len(files))
	for i, f := range files {
		tables[i] = f.Table
		result.Loaded[i] = f.Name
	}
	result.Table = tabload.Concat(tables...)

	rows, cols := result.Table.Shape()
	m.logger.Verbose("Summary:")
	m.logger.Verbose("Successfully loaded %d files", len(files))
	m.logger.Verbose("Combined dataset has %d rows and %d columns", rows, cols)

	return result, nil
}

// LoadAll discovers and loads every supported file under root. Files that
// fail to load are logged and returned by name in skipped.
//
// Returns tabload.ErrNoSupportedFiles when discovery finds nothing and
// tabload.ErrNoLoadableFiles when every file fails.
func (m *MergeCoordinator) LoadAll(root string, recursive bool) (loaded []tabload.LoadedFile, skipped []string, err error) {
	discovered, err := m.discoverer.Discover(root, recursive)
	if err != nil {
		return nil, nil, err
	}
	if len(discovered) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", tabload.ErrNoSupportedFiles, root)
	}

	m.logger.Verbose("Found %d files to process", len(discovered))

	for _, df := range discovered {
		table, err := m.reader.Load(df.Path)
		if err != nil {
			m.logger.Verbose("Error loading %s: %v", df.Name, err)
			skipped = append(skipped, df.Name)
			continue
		}

		rows, cols := table.Shape()
		m.logger.Verbose("%s is imported with %d rows and %d columns", df.Name, rows, cols)
		loaded = append(loaded, tabload.LoadedFile{Name: df.Name, Path: df.Path, Table: table})
	}

	if len(loaded) == 0 {
		return nil, skipped, tabload.ErrNoLoadableFiles
	}

	return loaded, skipped, nil
}
