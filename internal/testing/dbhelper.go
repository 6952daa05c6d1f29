package testing

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/tabload/internal/testinfra"
)

// TestConnEnvVar overrides the auto-started container.
const TestConnEnvVar = "TABLOAD_TEST_POSTGRES"

var (
	testContainerOnce sync.Once
	testContainerConn string
	testContainerErr  error
)

func getOrStartTestContainer() (string, error) {
	testContainerOnce.Do(func() {
		ctx := context.Background()
		container, err := testinfra.StartSimplePostgres(ctx)
		if err != nil {
			testContainerErr = err
			return
		}
		testContainerConn = container.ConnString
	})
	return testContainerConn, testContainerErr
}

// GetTestConnectionString returns the test database connection string.
// Priority: TABLOAD_TEST_POSTGRES env var > auto-started testcontainer > skip test.
func GetTestConnectionString(t *testing.T) string {
	t.Helper()

	if connString := os.Getenv(TestConnEnvVar); connString != "" {
		return connString
	}

	connString, err := getOrStartTestContainer()
	if err != nil {
		t.Skipf("%s not set and Docker unavailable: %v", TestConnEnvVar, err)
	}
	return connString
}

// SkipIfShort skips the test if running in short mode (-short flag).
func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// RequireDatabase combines SkipIfShort and GetTestConnectionString for convenience.
// Returns the test connection string if available, otherwise skips the test.
func RequireDatabase(t *testing.T) string {
	t.Helper()

	SkipIfShort(t)
	return GetTestConnectionString(t)
}

// GetTestPool opens a pool on connString that is closed when the test completes.
func GetTestPool(t *testing.T, connString string) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// UniqueTableName returns a fresh table name and drops that table when the
// test completes.
func UniqueTableName(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()

	name := "tabload_test_" + uuid.NewString()[:8]
	t.Cleanup(func() {
		_, err := pool.Exec(context.Background(), "DROP TABLE IF EXISTS "+pgx.Identifier{name}.Sanitize())
		if err != nil {
			t.Logf("Warning: Failed to drop table %s: %v", name, err)
		}
	})
	return name
}

// UniqueSchema creates a fresh schema and drops it, with its tables, when
// the test completes.
func UniqueSchema(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()

	name := "tabload_schema_" + uuid.NewString()[:8]
	ident := pgx.Identifier{name}.Sanitize()
	if _, err := pool.Exec(context.Background(), "CREATE SCHEMA "+ident); err != nil {
		t.Fatalf("Failed to create schema %s: %v", name, err)
	}
	t.Cleanup(func() {
		if _, err := pool.Exec(context.Background(), "DROP SCHEMA IF EXISTS "+ident+" CASCADE"); err != nil {
			t.Logf("Warning: Failed to drop schema %s: %v", name, err)
		}
	})
	return name
}
