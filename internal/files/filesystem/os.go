package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type osEntry struct {
	path string
	rel  string
	info fs.FileInfo
}

func (e *osEntry) Path() string         { return e.path }
func (e *osEntry) RelativePath() string { return e.rel }
func (e *osEntry) Info() FileInfo       { return e.info }

type osDirectory struct {
	path string
}

func (d *osDirectory) Path() string { return d.path }

func (d *osDirectory) List() ([]File, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		info, err := statEntry(filepath.Join(d.path, entry.Name()), entry)
		if err != nil {
			return nil, err
		}
		files = append(files, &osEntry{
			path: filepath.Join(d.path, entry.Name()),
			rel:  entry.Name(),
			info: info,
		})
	}
	return files, nil
}

func (d *osDirectory) Walk(fn func(File, error) error) error {
	return filepath.WalkDir(d.path, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fn(nil, walkErr)
		}

		info, err := statEntry(path, entry)
		if err != nil {
			return fn(nil, err)
		}
		rel, err := filepath.Rel(d.path, path)
		if err != nil {
			return fn(nil, fmt.Errorf("failed to get relative path: %w", err))
		}
		return fn(&osEntry{path: path, rel: rel, info: info}, nil)
	})
}

// statEntry resolves symlinks so a linked data file reports as regular.
// A dangling link keeps its own Lstat info and is left for the caller to skip.
func statEntry(path string, entry fs.DirEntry) (fs.FileInfo, error) {
	if entry.Type()&fs.ModeSymlink != 0 {
		if info, err := os.Stat(path); err == nil {
			return info, nil
		}
	}
	info, err := entry.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for %s: %w", path, err)
	}
	return info, nil
}

// OSFileSystem reads from the host filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Open(path string) (Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	return &osDirectory{path: abs}, nil
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

var _ FileSystemProvider = (*OSFileSystem)(nil)
