package export

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vvka-141/tabload/internal/retry"
	"github.com/vvka-141/tabload/pkg/tabload"
)

// Targets selects export destinations. Empty fields are skipped.
type Targets struct {
	Output   string // CSV file path, "-" for stdout
	SQLite   string // SQLite database file
	Postgres string // PostgreSQL connection string
	Table    string // table name for database targets
	Replace  bool   // drop an existing table first
}

// Empty reports whether no destination is set.
func (t Targets) Empty() bool {
	return t.Output == "" && t.SQLite == "" && t.Postgres == ""
}

// Sinks builds one sink per configured destination, CSV first.
func (t Targets) Sinks() ([]tabload.Sink, error) {
	if (t.SQLite != "" || t.Postgres != "") && t.Table == "" {
		return nil, fmt.Errorf("--table is required with --sqlite or --postgres: %w", tabload.ErrInvalidConfig)
	}

	var sinks []tabload.Sink
	switch t.Output {
	case "":
	case "-":
		sinks = append(sinks, NewCSVWriterSink(os.Stdout, "stdout"))
	default:
		sinks = append(sinks, NewCSVSink(t.Output))
	}
	if t.SQLite != "" {
		sinks = append(sinks, NewSQLiteSink(t.SQLite, t.Table, t.Replace))
	}
	if t.Postgres != "" {
		sinks = append(sinks, NewPostgresSink(t.Postgres, t.Table, t.Replace))
	}
	return sinks, nil
}

// Exporter writes a table to sinks in order, retrying transient failures.
type Exporter struct {
	executor *retry.Executor
	logger   tabload.Logger
	approver tabload.Approver
}

// replacer is implemented by sinks that may drop an existing table.
type replacer interface {
	Replaces() bool
}

// NewExporter creates an Exporter that retries each sink up to three times.
// Panics if logger is nil.
func NewExporter(logger tabload.Logger) *Exporter {
	return NewExporterWithExecutor(retry.NewExecutor(retry.NewSinkClassifier(), retry.NewExponentialBackoff(3)), logger)
}

// NewExporterWithExecutor creates an Exporter with a custom retry executor.
func NewExporterWithExecutor(executor *retry.Executor, logger tabload.Logger) *Exporter {
	if executor == nil {
		panic("executor cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Exporter{executor: executor, logger: logger}
}

// WithApprover returns a copy of e that asks approver before any sink drops
// an existing table.
func (e *Exporter) WithApprover(approver tabload.Approver) *Exporter {
	clone := *e
	clone.approver = approver
	return &clone
}

// Export writes table to every sink and stops at the first failure.
// Errors match tabload.ErrExportFailed. When an approver is set, every
// replacing sink is confirmed before anything is written; a refusal
// returns tabload.ErrNotApproved.
func (e *Exporter) Export(ctx context.Context, table *tabload.Table, sinks ...tabload.Sink) error {
	if err := e.approve(ctx, sinks); err != nil {
		return err
	}

	for _, sink := range sinks {
		dest := sink.Describe()
		exec := e.executor.WithOnRetry(func(attempt int, err error, delay time.Duration) {
			e.logger.Verbose("Retrying export to %s in %s (attempt %d): %v", dest, delay.Round(time.Millisecond), attempt+1, err)
		})

		start := time.Now()
		err := exec.Execute(ctx, func(ctx context.Context) error {
			return sink.Write(ctx, table)
		})
		if err != nil {
			return fmt.Errorf("%w to %s: %w", tabload.ErrExportFailed, dest, err)
		}
		e.logger.Verbose("Exported %d rows to %s in %s", table.Rows(), dest, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func (e *Exporter) approve(ctx context.Context, sinks []tabload.Sink) error {
	if e.approver == nil {
		return nil
	}
	for _, sink := range sinks {
		r, ok := sink.(replacer)
		if !ok || !r.Replaces() {
			continue
		}
		approved, err := e.approver.RequestApproval(ctx, sink.Describe())
		if err != nil {
			return fmt.Errorf("approval for %s: %w", sink.Describe(), err)
		}
		if !approved {
			return fmt.Errorf("%w: replace %s", tabload.ErrNotApproved, sink.Describe())
		}
	}
	return nil
}
