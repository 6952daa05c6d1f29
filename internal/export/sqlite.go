package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vvka-141/tabload/pkg/tabload"
)

// SQLiteSink writes the table into a SQLite database file.
type SQLiteSink struct {
	path    string
	table   string
	replace bool
}

// NewSQLiteSink targets table in the database file at path. The file is
// created if missing.
func NewSQLiteSink(path, table string, replace bool) *SQLiteSink {
	return &SQLiteSink{path: path, table: table, replace: replace}
}

// Describe returns "sqlite:<path>#<table>".
func (s *SQLiteSink) Describe() string {
	return fmt.Sprintf("sqlite:%s#%s", s.path, s.table)
}

// Write creates the table and inserts all rows in one transaction.
func (s *SQLiteSink) Write(ctx context.Context, table *tabload.Table) error {
	db, err := sql.Open("sqlite3", s.path+"?_busy_timeout=5000")
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	name := quoteSQLite(s.table)
	if s.replace {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}

	types := table.Types()
	defs := make([]string, table.Width())
	marks := make([]string, table.Width())
	for i, col := range table.Columns() {
		defs[i] = quoteSQLite(col) + " " + sqliteType(types[i])
		marks[i] = "?"
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s VALUES (%s)", name, strings.Join(marks, ", ")))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < table.Rows(); i++ {
		if _, err := stmt.ExecContext(ctx, table.Row(i)...); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func sqliteType(t tabload.ColumnType) string {
	switch t {
	case tabload.ColumnTypeInt:
		return "INTEGER"
	case tabload.ColumnTypeFloat:
		return "REAL"
	case tabload.ColumnTypeBool:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

func quoteSQLite(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

var _ tabload.Sink = (*SQLiteSink)(nil)

// Replaces reports whether Write drops an existing table first.
func (s *SQLiteSink) Replaces() bool { return s.replace }
