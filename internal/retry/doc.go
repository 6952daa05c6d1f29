// Package retry re-runs export operations that fail for transient reasons.
//
// A Classifier decides whether an error is worth another attempt and a
// Strategy decides how long to wait before it. SinkClassifier recognizes
// PostgreSQL connection, contention and resource errors, SQLite busy and
// locked errors, and refused or reset network connections.
//
//	executor := retry.NewExecutor(retry.NewSinkClassifier(), retry.NewExponentialBackoff(3))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return sink.Write(ctx, table)
//	})
package retry
