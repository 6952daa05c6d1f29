// Package export writes a combined table to its destinations.
//
// Three sinks implement tabload.Sink:
//   - CSVSink writes a header row plus one record per row, nulls as empty fields
//   - SQLiteSink creates a table through mattn/go-sqlite3 and inserts rows in one transaction
//   - PostgresSink creates a table through pgx and streams rows with COPY
//
// Database sinks create the target table from the column types and fail if
// it already exists, unless replace is set, in which case it is dropped
// first. Each Write is a single transaction, so Exporter can retry it as a
// whole on transient errors.
package export
