package tabload

import "context"

// Sink receives the combined table after a successful load.
// Implementations own any connection or file handle they open and must
// release it before Write returns.
type Sink interface {
	// Write persists the table.
	Write(ctx context.Context, table *Table) error

	// Describe returns a short human-readable destination, e.g. "sqlite:out.db#sales".
	Describe() string
}
