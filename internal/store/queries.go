package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/gyeh/providerstats/internal/model"
	embedsql "github.com/gyeh/providerstats/internal/sql"
)

const (
	defaultTopProcedures = 10
	defaultRecentRuns    = 10
)

// CountProviders returns the number of distinct stored providers.
func (s *Store) CountProviders(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, embedsql.CountProviders).Scan(&n); err != nil {
		return 0, &Error{Op: "count providers", Err: err}
	}
	return n, nil
}

// PeriodCounts returns service-line and distinct-provider counts per year,
// newest year first.
func (s *Store) PeriodCounts(ctx context.Context) ([]model.PeriodCount, error) {
	rows, err := s.pool.Query(ctx, embedsql.PeriodCounts)
	if err != nil {
		return nil, &Error{Op: "period counts", Err: err}
	}
	defer rows.Close()

	var out []model.PeriodCount
	for rows.Next() {
		var pc model.PeriodCount
		if err := rows.Scan(&pc.Year, &pc.Lines, &pc.Providers); err != nil {
			return nil, &Error{Op: "period counts", Err: err}
		}
		out = append(out, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Op: "period counts", Err: err}
	}
	return out, nil
}

// TopProcedures returns the n most frequent procedures with their average
// charge, allowed and paid amounts. Ties keep first-insertion order.
func (s *Store) TopProcedures(ctx context.Context, n int) ([]model.ProcedureFrequency, error) {
	if n <= 0 {
		n = defaultTopProcedures
	}
	rows, err := s.pool.Query(ctx, embedsql.TopProcedures, n)
	if err != nil {
		return nil, &Error{Op: "top procedures", Err: err}
	}
	defer rows.Close()

	var out []model.ProcedureFrequency
	for rows.Next() {
		var pf model.ProcedureFrequency
		if err := rows.Scan(&pf.HCPCSCode, &pf.HCPCSDescription, &pf.Frequency,
			&pf.AvgSubmitted, &pf.AvgAllowed, &pf.AvgPayment); err != nil {
			return nil, &Error{Op: "top procedures", Err: err}
		}
		out = append(out, pf)
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Op: "top procedures", Err: err}
	}
	return out, nil
}

// RecentRuns returns the n most recent run-log rows, newest first.
func (s *Store) RecentRuns(ctx context.Context, n int) ([]model.CollectionRun, error) {
	if n <= 0 {
		n = defaultRecentRuns
	}
	rows, err := s.pool.Query(ctx, embedsql.RecentRuns, n)
	if err != nil {
		return nil, &Error{Op: "recent runs", Err: err}
	}
	defer rows.Close()

	var out []model.CollectionRun
	for rows.Next() {
		var (
			run    model.CollectionRun
			runID  *uuid.UUID
			status string
		)
		if err := rows.Scan(&run.ID, &runID, &run.Year, &status, &run.RecordsCollected,
			&run.ProvidersFound, &run.ErrorMessage, &run.Timestamp); err != nil {
			return nil, &Error{Op: "recent runs", Err: err}
		}
		if runID != nil {
			run.RunID = *runID
		}
		run.Status = model.RunStatus(status)
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Op: "recent runs", Err: err}
	}
	return out, nil
}

// Summary collects the overview shown after a run: provider total, per-year
// counts, top procedures and recent run logs.
func (s *Store) Summary(ctx context.Context, topN, recentN int) (*model.CollectionSummary, error) {
	total, err := s.CountProviders(ctx)
	if err != nil {
		return nil, err
	}
	periods, err := s.PeriodCounts(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.TopProcedures(ctx, topN)
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentRuns(ctx, recentN)
	if err != nil {
		return nil, err
	}
	return &model.CollectionSummary{
		TotalProviders: total,
		Periods:        periods,
		TopProcedures:  top,
		RecentRuns:     recent,
	}, nil
}

// ListServiceLines returns stored service lines in insertion order, joined
// with their provider's location. year 0 selects every year.
func (s *Store) ListServiceLines(ctx context.Context, year int) ([]model.ServiceLineRow, error) {
	rows, err := s.pool.Query(ctx, embedsql.ListServiceLines, year)
	if err != nil {
		return nil, &Error{Op: "list service lines", Err: err}
	}
	defer rows.Close()

	var out []model.ServiceLineRow
	for rows.Next() {
		var (
			r  model.ServiceLineRow
			yr int
		)
		if err := rows.Scan(&r.NPI, &r.PhysicianName, &yr, &r.HCPCSCode, &r.HCPCSDescription,
			&r.City, &r.State, &r.ZipCode,
			&r.LineServiceCount, &r.BeneficiaryUniqueCount,
			&r.AverageSubmittedCharge, &r.AverageMedicareAllowed,
			&r.AverageMedicarePayment, &r.AverageMedicareStandard,
			&r.RunID); err != nil {
			return nil, &Error{Op: "list service lines", Err: err}
		}
		r.Year = int32(yr)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Op: "list service lines", Err: err}
	}
	return out, nil
}
