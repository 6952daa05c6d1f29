package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vvka-141/tabload/pkg/tabload"
)

// PostgresSink writes the table into PostgreSQL with COPY.
type PostgresSink struct {
	connString string
	table      pgx.Identifier
	replace    bool
}

// NewPostgresSink targets table, optionally schema-qualified ("staging.sales").
func NewPostgresSink(connString, table string, replace bool) *PostgresSink {
	return &PostgresSink{
		connString: connString,
		table:      pgx.Identifier(strings.Split(table, ".")),
		replace:    replace,
	}
}

// Describe returns "postgres://<host>/<db>#<table>" without credentials.
func (s *PostgresSink) Describe() string {
	target := "postgres"
	if cfg, err := pgx.ParseConfig(s.connString); err == nil {
		target = fmt.Sprintf("postgres://%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)
	}
	return target + "#" + strings.Join(s.table, ".")
}

// Write creates the table and copies every row inside one transaction.
func (s *PostgresSink) Write(ctx context.Context, table *tabload.Table) error {
	conn, err := pgx.Connect(ctx, s.connString)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	name := s.table.Sanitize()
	if s.replace {
		if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}

	columns := table.Columns()
	types := table.Types()
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = pgx.Identifier{col}.Sanitize() + " " + postgresType(types[i])
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	copied, err := tx.CopyFrom(ctx, s.table, columns, pgx.CopyFromSlice(table.Rows(), func(i int) ([]any, error) {
		return table.Row(i), nil
	}))
	if err != nil {
		return fmt.Errorf("copy rows: %w", err)
	}
	if copied != int64(table.Rows()) {
		return fmt.Errorf("copied %d of %d rows", copied, table.Rows())
	}

	return tx.Commit(ctx)
}

func postgresType(t tabload.ColumnType) string {
	switch t {
	case tabload.ColumnTypeInt:
		return "bigint"
	case tabload.ColumnTypeFloat:
		return "double precision"
	case tabload.ColumnTypeBool:
		return "boolean"
	default:
		return "text"
	}
}

var _ tabload.Sink = (*PostgresSink)(nil)

// Replaces reports whether Write drops an existing table first.
func (s *PostgresSink) Replaces() bool { return s.replace }
