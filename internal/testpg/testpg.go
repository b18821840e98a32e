// Package testpg runs an embedded PostgreSQL for package integration tests.
package testpg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/providerstats/internal/db"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
)

// DSN is set by Main once the embedded server is up.
var DSN string

// Main starts an embedded postgres on port, runs the package tests and stops
// the server. Each package must use its own port since packages run in
// parallel. When the server cannot be started (no cached binaries and no
// network) the package is skipped.
func Main(m *testing.M, port uint32, database string) {
	DSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, port, database)

	runtime := filepath.Join(os.TempDir(), fmt.Sprintf("cmscollect-pg-%d", port))
	pg := embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(port).
			Database(database).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			RuntimePath(runtime).
			StartTimeout(45*time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "SKIP: failed to start embedded postgres: %v\n", err)
		os.Exit(0)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}
	os.Exit(code)
}

// Setup connects to the embedded server, drops every collector table and
// re-applies migrations so each test starts from an empty schema.
func Setup(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, DSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	for _, tbl := range []string{"service_lines", "providers", "collection_runs"} {
		if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", tbl)); err != nil {
			pool.Close()
			t.Fatalf("drop table %s: %v", tbl, err)
		}
	}

	if err := db.ApplyMigrations(ctx, pool, zerolog.Nop()); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}

	t.Cleanup(func() { pool.Close() })
	return pool
}
