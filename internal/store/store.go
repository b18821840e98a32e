// Package store persists providers, service lines and collection runs in
// PostgreSQL and answers the collection summary queries.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/providerstats/internal/db"
	"github.com/gyeh/providerstats/internal/model"
	"github.com/gyeh/providerstats/internal/normalize"
	embedsql "github.com/gyeh/providerstats/internal/sql"
)

// Error wraps a persistence failure with the operation that hit it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store %s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Store is the pgx-backed persistence layer.
type Store struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// New wires a Store on an existing pool.
func New(pool *pgxpool.Pool, log zerolog.Logger) *Store {
	return &Store{pool: pool, log: log}
}

// Init creates the schema if it does not exist.
func (s *Store) Init(ctx context.Context) error {
	if err := db.ApplyMigrations(ctx, s.pool, s.log); err != nil {
		return &Error{Op: "init", Err: err}
	}
	return nil
}

// UpsertProviders inserts or replaces each provider by NPI. Each row is an
// independent statement, so a failure mid-batch leaves earlier rows applied.
func (s *Store) UpsertProviders(ctx context.Context, providers []model.Provider) error {
	if len(providers) == 0 {
		return nil
	}
	start := time.Now()

	for i := range providers {
		if _, err := s.pool.Exec(ctx, embedsql.UpsertProvider, providers[i].Values()...); err != nil {
			return &Error{Op: "upsert provider", Err: fmt.Errorf("npi %q: %w", providers[i].NPI, err)}
		}
	}

	s.log.Debug().
		Int("providers", len(providers)).
		Dur("duration", time.Since(start)).
		Msg("providers upserted")
	return nil
}

// AppendServiceLines COPYs lines into service_lines, each with a fresh id.
// Repeated calls for the same year are not deduplicated.
func (s *Store) AppendServiceLines(ctx context.Context, runID uuid.UUID, lines []model.ServiceLine) (int64, error) {
	if len(lines) == 0 {
		return 0, nil
	}
	start := time.Now()

	n, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{"service_lines"},
		model.ServiceLineColumns(),
		db.NewLineSource(runID, lines),
	)
	if err != nil {
		return 0, &Error{Op: "append service lines", Err: err}
	}

	s.log.Debug().
		Int64("lines", n).
		Dur("duration", time.Since(start)).
		Msg("service lines appended")
	return n, nil
}

// AppendRunLog records the outcome of one year's collection attempt. The
// error message is cleaned so that no error text can make the insert fail.
func (s *Store) AppendRunLog(ctx context.Context, run model.CollectionRun) error {
	if run.ErrorMessage != nil {
		msg := normalize.CleanText(*run.ErrorMessage)
		run.ErrorMessage = &msg
	}
	_, err := s.pool.Exec(ctx, embedsql.InsertRunLog,
		run.RunID,
		run.Year,
		string(run.Status),
		run.RecordsCollected,
		run.ProvidersFound,
		run.ErrorMessage,
	)
	if err != nil {
		return &Error{Op: "append run log", Err: err}
	}
	return nil
}
