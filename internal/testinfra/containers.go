package testinfra

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// PostgresImage is used unless TABLOAD_TEST_POSTGRES_IMAGE names another.
	PostgresImage    = "postgres:17-alpine"
	PostgresImageEnv = "TABLOAD_TEST_POSTGRES_IMAGE"
	PostgresUser     = "tabload"
	PostgresPassword = "tabload"
	PostgresDB       = "tabload"
)

// PostgresContainer is a running PostgreSQL test container.
type PostgresContainer struct {
	*postgres.PostgresContainer
	ConnString string
}

// StartSimplePostgres starts a plain PostgreSQL container for export tests.
// The caller owns termination; test helpers keep one container per process.
func StartSimplePostgres(ctx context.Context) (*PostgresContainer, error) {
	image := PostgresImage
	if override := os.Getenv(PostgresImageEnv); override != "" {
		image = override
	}

	ctr, err := postgres.Run(ctx,
		image,
		postgres.WithUsername(PostgresUser),
		postgres.WithPassword(PostgresPassword),
		postgres.WithDatabase(PostgresDB),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", image, err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	return &PostgresContainer{PostgresContainer: ctr, ConnString: connStr}, nil
}
