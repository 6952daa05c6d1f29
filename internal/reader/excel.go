package reader

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

func parseXLSX(data []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("workbook has no sheets")
	}

	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return splitSheet(grid)
}

func parseXLS(data []byte) (header []string, rows [][]string, err error) {
	// The BIFF decoder panics on some malformed records.
	defer func() {
		if r := recover(); r != nil {
			header, rows, err = nil, nil, fmt.Errorf("malformed workbook: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, nil, errors.New("workbook has no sheets")
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil, errors.New("failed to read first sheet")
	}

	var grid [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		grid = append(grid, cells)
	}
	return splitSheet(grid)
}

// splitSheet separates the header from data rows of a worksheet grid.
// Rows with no content are dropped, and the header is widened to the
// widest row so stray cells right of the header get Unnamed columns.
func splitSheet(grid [][]string) ([]string, [][]string, error) {
	start := 0
	for start < len(grid) && blank(grid[start]) {
		start++
	}
	if start == len(grid) {
		return nil, nil, errors.New("no columns to parse from sheet")
	}

	header := grid[start]
	width := len(header)
	var rows [][]string
	for _, row := range grid[start+1:] {
		if blank(row) {
			continue
		}
		width = max(width, len(row))
		rows = append(rows, row)
	}

	if width > len(header) {
		widened := make([]string, width)
		copy(widened, header)
		header = widened
	}
	return header, rows, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
