package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory files
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    fs.FileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) List() ([]File, error) {
	var files []File
	for _, entry := range d.fs.entriesUnder(d.absPath) {
		if entry.absPath == d.absPath || path.Dir(entry.absPath) != d.absPath {
			continue
		}
		files = append(files, d.relativeTo(entry))
	}
	return files, nil
}

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	for _, entry := range d.fs.entriesUnder(d.absPath) {
		if err := fn(d.relativeTo(entry), nil); err != nil {
			return err
		}
	}
	return nil
}

// relativeTo re-roots an entry's relative path at the opened directory.
func (d *memoryDirectory) relativeTo(entry *memoryFile) *memoryFile {
	rel := "."
	if entry.absPath != d.absPath {
		rel = strings.TrimPrefix(entry.absPath, strings.TrimSuffix(d.absPath, "/")+"/")
	}
	return &memoryFile{
		absPath: entry.absPath,
		relPath: filepath.FromSlash(rel),
		content: entry.content,
		info:    entry.info,
	}
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	files map[string]*memoryFile // map of absolute path -> file
	root  string                  // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = newMemoryDir(root)

	return mfs
}

func newMemoryDir(absPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

// AddFile adds a text file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddBytes(filePath, []byte(content))
}

// AddBytes adds a file with binary content, such as a generated workbook.
func (mfs *MemoryFileSystem) AddBytes(filePath string, content []byte) {
	mfs.addEntry(filePath, content, 0644)
}

// AddSpecial adds an entry that is neither a regular file nor a directory
// (a named pipe), for exercising invalid-path handling.
func (mfs *MemoryFileSystem) AddSpecial(filePath string) {
	mfs.addEntry(filePath, nil, 0644|fs.ModeNamedPipe)
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	mfs.files[absPath] = newMemoryDir(absPath)
	mfs.ensureDirectoriesExist(absPath)
}

func (mfs *MemoryFileSystem) addEntry(filePath string, content []byte, mode fs.FileMode) {
	absPath := mfs.resolve(filePath)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    mode,
			modTime: time.Now(),
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// resolve maps a relative or absolute virtual path onto a cleaned absolute path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = newMemoryDir(dir)
	mfs.ensureDirectoriesExist(dir)
}

// entriesUnder returns the entry at basePath and everything below it,
// sorted by path for deterministic order.
func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryFile {
	prefix := strings.TrimSuffix(basePath, "/") + "/"
	var entries []*memoryFile
	for p, file := range mfs.files {
		if p == basePath || strings.HasPrefix(p, prefix) {
			entries = append(entries, file)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})
	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s: %w", openPath, fs.ErrNotExist)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return file.content, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}

	return file.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
