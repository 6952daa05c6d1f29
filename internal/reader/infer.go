package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/tabload/pkg/tabload"
)

// nullTokens are cell spellings read as missing values.
var nullTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

func isNull(cell string) bool {
	_, ok := nullTokens[cell]
	return ok
}

// normalizeHeader names blank headers "Unnamed: i" and renames repeats
// "name.1", "name.2", ... skipping names already taken.
func normalizeHeader(raw []string) []string {
	names := make([]string, len(raw))
	taken := make(map[string]bool, len(raw))
	for i, name := range raw {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		names[i] = name
	}

	for i, name := range names {
		if !taken[name] {
			taken[name] = true
			continue
		}
		for n := 1; ; n++ {
			candidate := fmt.Sprintf("%s.%d", name, n)
			if !taken[candidate] && !contains(names[i+1:], candidate) {
				names[i] = candidate
				taken[candidate] = true
				break
			}
		}
	}
	return names
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// buildTable converts header plus raw rows into a typed Table. Rows shorter
// than the header are padded with nulls.
func buildTable(header []string, rows [][]string) (*tabload.Table, error) {
	names := normalizeHeader(header)
	columns := make([]tabload.Column, len(names))

	for c, name := range names {
		cells := make([]string, len(rows))
		for r, row := range rows {
			if c < len(row) {
				cells[r] = row[c]
			}
		}
		columns[c] = inferColumn(name, cells)
	}

	return tabload.NewTable(columns)
}

// inferColumn picks the narrowest type that parses every non-null cell:
// int, then float, then bool, falling back to text.
func inferColumn(name string, cells []string) tabload.Column {
	col := tabload.Column{Name: name, Type: tabload.ColumnTypeText, Values: make([]any, len(cells))}

	convert := []struct {
		typ   tabload.ColumnType
		parse func(string) (any, bool)
	}{
		{tabload.ColumnTypeInt, parseInt},
		{tabload.ColumnTypeFloat, parseFloat},
		{tabload.ColumnTypeBool, parseBool},
	}

	for _, conv := range convert {
		if fill(col.Values, cells, conv.parse) {
			col.Type = conv.typ
			return col
		}
	}

	for i, cell := range cells {
		if isNull(cell) {
			col.Values[i] = nil
		} else {
			col.Values[i] = cell
		}
	}
	return col
}

// fill writes parsed values into dst and reports whether every non-null
// cell parsed. An all-null column parses as any type; the first wins.
func fill(dst []any, cells []string, parse func(string) (any, bool)) bool {
	for i, cell := range cells {
		if isNull(cell) {
			dst[i] = nil
			continue
		}
		v, ok := parse(strings.TrimSpace(cell))
		if !ok {
			return false
		}
		dst[i] = v
	}
	return true
}

func parseInt(s string) (any, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}

func parseFloat(s string) (any, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func parseBool(s string) (any, bool) {
	switch s {
	case "True", "TRUE", "true":
		return true, true
	case "False", "FALSE", "false":
		return false, true
	default:
		return nil, false
	}
}
