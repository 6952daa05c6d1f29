package retry

import (
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// SinkClassifier flags errors from database sinks that may succeed on retry.
type SinkClassifier struct{}

// NewSinkClassifier creates a SinkClassifier.
func NewSinkClassifier() *SinkClassifier {
	return &SinkClassifier{}
}

// IsTransient reports whether err is worth retrying.
func (c *SinkClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return transientPgCode(pgErr.Code)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return strings.Contains(strings.ToLower(connectErr.Error()), "the database system is starting up")
	}

	return false
}

// transientPgCode covers connection exceptions (08), insufficient
// resources (53), operator intervention (57), serialization failures,
// deadlocks and lock timeouts.
func transientPgCode(code string) bool {
	switch {
	case strings.HasPrefix(code, "08"),
		strings.HasPrefix(code, "53"),
		strings.HasPrefix(code, "57"):
		return true
	}

	switch code {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}
