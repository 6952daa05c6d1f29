package reader

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/vvka-141/tabload/internal/files/filesystem"
	"github.com/vvka-141/tabload/pkg/tabload"
)

// Reader loads one tabular file into a Table.
type Reader struct {
	fsProvider filesystem.FileSystemProvider
}

// NewReader creates a Reader on the OS filesystem.
func NewReader() *Reader {
	return &Reader{fsProvider: filesystem.NewOSFileSystem()}
}

// NewReaderWithFS creates a Reader with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewReaderWithFS(fsProvider filesystem.FileSystemProvider) *Reader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Reader{fsProvider: fsProvider}
}

// Load reads path with the parser bound to its extension.
// Returns tabload.ErrUnsupportedFormat for extensions other than
// .csv, .xlsx and .xls, and tabload.ErrNotFound for missing files.
func (r *Reader) Load(path string) (*tabload.Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := r.fsProvider.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", tabload.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	header, rows, err := format.parser()(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s as %s: %w", path, format, err)
	}

	table, err := buildTable(header, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build table from %s: %w", path, err)
	}
	return table, nil
}

// Verify Reader implements the interface at compile time
var _ tabload.TableReader = (*Reader)(nil)
