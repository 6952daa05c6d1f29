package services

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/tabload/internal/files/filesystem"
	"github.com/vvka-141/tabload/internal/files/scanner"
	"github.com/vvka-141/tabload/internal/logging"
	"github.com/vvka-141/tabload/internal/reader"
	"github.com/vvka-141/tabload/pkg/tabload"
)

// Result describes a completed load.
type Result struct {
	RunID     uuid.UUID
	Source    string
	Directory bool
	Table     *tabload.Table
	Loaded    []string
	Skipped   []string
	Report    tabload.ConsistencyReport
	Duration  time.Duration
}

// Loader loads a single file or merges a directory, depending on what the
// configured path points at.
type Loader struct {
	fsProvider filesystem.FileSystemProvider
	reader     tabload.TableReader
	merger     *MergeCoordinator
	logger     tabload.Logger
}

// NewLoader creates a Loader with all dependencies injected.
// Panics on nil dependencies.
func NewLoader(
	fsProvider filesystem.FileSystemProvider,
	discoverer tabload.FileDiscoverer,
	reader tabload.TableReader,
	logger tabload.Logger,
) *Loader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Loader{
		fsProvider: fsProvider,
		reader:     reader,
		merger:     NewMergeCoordinator(discoverer, reader, logger),
		logger:     logger,
	}
}

// NewOSLoader wires a Loader to the OS filesystem.
func NewOSLoader(logger tabload.Logger) *Loader {
	fsProvider := filesystem.NewOSFileSystem()
	return NewLoader(fsProvider, scanner.NewScannerWithFS(fsProvider), reader.NewReaderWithFS(fsProvider), logger)
}

// Merger exposes the coordinator used for directory paths.
func (l *Loader) Merger() *MergeCoordinator {
	return l.merger
}

// Load resolves cfg.Path and loads it.
//
// A regular file goes to the table reader; a directory is merged under
// cfg.Policy. A missing path returns tabload.ErrNotFound and anything else
// (device, socket, pipe) tabload.ErrInvalidPath.
func (l *Loader) Load(cfg tabload.LoadConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := &Result{RunID: uuid.New(), Source: cfg.Path}

	info, err := l.fsProvider.Stat(cfg.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", tabload.ErrNotFound, cfg.Path)
		}
		return nil, fmt.Errorf("failed to access %s: %w", cfg.Path, err)
	}

	switch {
	case info.Mode().IsRegular():
		table, err := l.reader.Load(cfg.Path)
		if err != nil {
			return nil, err
		}
		name := filepath.Base(cfg.Path)
		rows, cols := table.Shape()
		l.logger.Verbose("%s is imported with %d rows and %d columns", name, rows, cols)
		result.Table = table
		result.Loaded = []string{name}

	case info.IsDir():
		merged, err := l.merger.Merge(cfg.Path, cfg.Recursive, cfg.Policy)
		if err != nil {
			return nil, err
		}
		result.Directory = true
		result.Table = merged.Table
		result.Loaded = merged.Loaded
		result.Skipped = merged.Skipped
		result.Report = merged.Report

	default:
		return nil, fmt.Errorf("%w: %s", tabload.ErrInvalidPath, cfg.Path)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// Options are the optional knobs of the Load convenience function.
type Options struct {
	Recursive bool
	Quiet     bool   // suppress verbose diagnostics
	Policy    string // "error" (default), "warning" or "ignore"
}

// Load reads path from the OS filesystem with diagnostics on stderr.
// An unknown Policy returns tabload.ErrInvalidConfig before any I/O.
func Load(path string, opts Options) (*tabload.Table, error) {
	policy, err := tabload.ParsePolicy(opts.Policy)
	if err != nil {
		return nil, err
	}

	loader := NewOSLoader(logging.NewConsoleLogger(!opts.Quiet))
	result, err := loader.Load(tabload.LoadConfig{
		Path:      path,
		Recursive: opts.Recursive,
		Verbose:   !opts.Quiet,
		Policy:    policy,
	})
	if err != nil {
		return nil, err
	}
	return result.Table, nil
}
