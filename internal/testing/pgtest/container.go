// Package pgtest starts a disposable PostgreSQL for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	Image    = "postgres:15-alpine"
	Database = "testdb"
	Username = "testuser"
	Password = "testpass"
)

// Start runs a postgres container and returns its connection string and a terminate func.
// A Docker failure (including a panic inside testcontainers) yields an error instead of crashing
// the test binary, so callers can skip.
func Start(ctx context.Context) (connStr string, terminate func(), err error) {
	terminate = func() {}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("testcontainers panicked (likely Docker issue): %v", r)
		}
	}()

	container, err := postgres.Run(ctx,
		Image,
		postgres.WithDatabase(Database),
		postgres.WithUsername(Username),
		postgres.WithPassword(Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", terminate, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return "", terminate, fmt.Errorf("failed to get connection string: %w", err)
	}

	return connStr, func() {
		if err := container.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}, nil
}
