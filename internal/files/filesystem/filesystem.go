package filesystem

import (
	"io/fs"
)

// FileInfo is fs.FileInfo; kept as a local name so callers need not import io/fs.
type FileInfo = fs.FileInfo

// File is one directory entry found while listing or walking.
type File interface {
	// Path returns the absolute path
	Path() string

	// RelativePath returns the path relative to the opened directory
	RelativePath() string

	// Info describes the entry itself. Symlinks are reported as symlinks
	// when their target cannot be resolved.
	Info() FileInfo
}

// Directory is an opened directory that can be listed or walked.
type Directory interface {
	Path() string

	// List returns the direct children, sorted by name.
	List() ([]File, error)

	// Walk visits every entry below the directory, the root included, in
	// lexical order. A non-nil error from fn stops the walk and is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider opens directories and reads data files.
type FileSystemProvider interface {
	Open(path string) (Directory, error)

	// ReadFile returns the whole content of a data file.
	ReadFile(path string) ([]byte, error)

	// Stat follows symlinks. Missing paths yield an error matching fs.ErrNotExist.
	Stat(path string) (FileInfo, error)
}
