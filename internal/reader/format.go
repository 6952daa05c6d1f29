package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/tabload/pkg/tabload"
)

// Format is a supported tabular file format.
type Format int

const (
	FormatCSV  Format = iota // delimited text with a header row
	FormatXLSX               // Office Open XML workbook
	FormatXLS                // legacy BIFF workbook
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatXLSX:
		return "xlsx"
	case FormatXLS:
		return "xls"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// FormatFromPath maps a file extension (case-insensitive) to its Format.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case tabload.ExtCSV:
		return FormatCSV, nil
	case tabload.ExtXLSX:
		return FormatXLSX, nil
	case tabload.ExtXLS:
		return FormatXLS, nil
	default:
		return 0, fmt.Errorf("%w: %q (supported: %s)", tabload.ErrUnsupportedFormat, ext, strings.Join(tabload.SupportedExtensions, ", "))
	}
}

// parser turns raw file bytes into a header row and data rows.
type parser func(data []byte) (header []string, rows [][]string, err error)

func (f Format) parser() parser {
	switch f {
	case FormatXLSX:
		return parseXLSX
	case FormatXLS:
		return parseXLS
	default:
		return parseCSV
	}
}
