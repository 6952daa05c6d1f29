package reader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/tabload/pkg/tabload"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func parseCSV(data []byte) ([]string, [][]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, errors.New("no columns to parse from file")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read row %d: %w", len(rows)+1, err)
		}
		if len(record) > len(header) {
			line, _ := r.FieldPos(0)
			extra := preview(strings.Join(record[len(header):], ","))
			return nil, nil, fmt.Errorf("line %d: expected %d fields, saw %d (extra: %q)", line, len(header), len(record), extra)
		}
		rows = append(rows, record)
	}

	return header, rows, nil
}

func preview(s string) string {
	if len(s) <= tabload.MaxErrorPreviewLength {
		return s
	}
	return s[:tabload.MaxErrorPreviewLength] + "..."
}
