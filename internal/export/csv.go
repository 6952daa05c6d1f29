package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/tabload/pkg/tabload"
)

// CSVSink writes the table as comma-separated text.
type CSVSink struct {
	path string
	out  io.Writer
}

// NewCSVSink writes to the file at path, truncating it.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

// NewCSVWriterSink writes to out. name is used by Describe only.
func NewCSVWriterSink(out io.Writer, name string) *CSVSink {
	return &CSVSink{path: name, out: out}
}

// Describe returns "csv:<path>".
func (s *CSVSink) Describe() string {
	return "csv:" + s.path
}

// Write emits the header and every row.
func (s *CSVSink) Write(ctx context.Context, table *tabload.Table) (err error) {
	out := s.out
	if out == nil {
		f, openErr := os.Create(s.path)
		if openErr != nil {
			return openErr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(table.Columns()); err != nil {
		return err
	}

	record := make([]string, table.Width())
	for i := 0; i < table.Rows(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j, v := range table.Row(i) {
			record[j] = tabload.FormatValue(v)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	w.Flush()
	return w.Error()
}

var _ tabload.Sink = (*CSVSink)(nil)
