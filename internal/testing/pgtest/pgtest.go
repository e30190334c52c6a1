// Package pgtest starts a disposable PostgreSQL container for integration
// tests. Callers treat an empty connection string as "skip".
package pgtest

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image          = "postgres:16-alpine"
	dbName         = "questgate_test"
	dbUser         = "questgate"
	dbPassword     = "questgate"
	startupTimeout = 60 * time.Second
)

// Start runs a container and returns its DSN with a terminate func. Missing
// Docker is reported on stderr and yields ("", no-op) rather than failing.
func Start(ctx context.Context) (dsn string, terminate func()) {
	terminate = func() {}
	defer func() {
		// testcontainers panics when no Docker host can be found
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "pgtest: docker unavailable: %v\n", r)
			dsn = ""
		}
	}()

	c, err := postgres.Run(ctx, image,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgtest: start container: %v\n", err)
		return "", terminate
	}
	terminate = func() {
		if err := c.Terminate(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "pgtest: terminate container: %v\n", err)
		}
	}

	dsn, err = c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgtest: connection string: %v\n", err)
		return "", terminate
	}
	return dsn, terminate
}

// Skip skips t in -short mode or when dsn is empty
func Skip(t testing.TB, dsn string) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in -short mode")
	}
	if dsn == "" {
		t.Skip("integration test skipped: postgres unavailable")
	}
}
