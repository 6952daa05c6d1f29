package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/tabload/internal/files/filesystem"
	"github.com/vvka-141/tabload/pkg/tabload"
)

// Scanner discovers supported data files under a directory.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new file scanner on the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// Discover returns the regular files under root whose extension is one of
// .csv, .xlsx or .xls (case-insensitive), in listing order.
//
// Parameters:
//   - root: Directory to search
//   - recursive: Descend into subdirectories; otherwise only direct children are inspected
//
// Returns:
//   - []tabload.DiscoveredFile: Matching files, possibly empty
//   - error: tabload.ErrNotFound if root does not exist, or any error encountered while listing
func (s *Scanner) Discover(root string, recursive bool) ([]tabload.DiscoveredFile, error) {
	info, err := s.fsProvider.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", tabload.ErrNotFound, root)
		}
		return nil, fmt.Errorf("failed to access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", tabload.ErrInvalidPath, root)
	}

	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	if !recursive {
		entries, err := dir.List()
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", root, err)
		}

		var files []tabload.DiscoveredFile
		for _, entry := range entries {
			if df, ok := s.candidate(entry); ok {
				files = append(files, df)
			}
		}
		return files, nil
	}

	var files []tabload.DiscoveredFile
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if df, ok := s.candidate(file); ok {
			files = append(files, df)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// candidate reports whether file is a regular file with a supported
// extension. Symlinks are resolved before the check.
func (s *Scanner) candidate(file filesystem.File) (tabload.DiscoveredFile, bool) {
	info := file.Info()
	if info.Mode()&fs.ModeSymlink != 0 {
		resolved, err := s.fsProvider.Stat(file.Path())
		if err != nil {
			return tabload.DiscoveredFile{}, false
		}
		info = resolved
	}

	if !info.Mode().IsRegular() {
		return tabload.DiscoveredFile{}, false
	}

	ext := strings.ToLower(filepath.Ext(info.Name()))
	if !IsSupportedExtension(ext) {
		return tabload.DiscoveredFile{}, false
	}

	return tabload.DiscoveredFile{
		Path:         file.Path(),
		RelativePath: file.RelativePath(),
		Name:         filepath.Base(file.Path()),
		Extension:    ext,
		SizeBytes:    info.Size(),
	}, true
}

// IsSupportedExtension checks if a lower-cased extension (with leading dot)
// names a tabular format the reader understands.
func IsSupportedExtension(ext string) bool {
	switch ext {
	case tabload.ExtCSV, tabload.ExtXLSX, tabload.ExtXLS:
		return true
	default:
		return false
	}
}

// Verify Scanner implements the interface at compile time
var _ tabload.FileDiscoverer = (*Scanner)(nil)
