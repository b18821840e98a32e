// Package analysis answers read-only questions over collected data:
// per-provider rollups, procedure price comparisons and year-over-year
// trends.
package analysis

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/providerstats/internal/model"
	"github.com/gyeh/providerstats/internal/normalize"
	embedsql "github.com/gyeh/providerstats/internal/sql"
	"github.com/gyeh/providerstats/internal/store"
)

// ProcedureLimit caps the cross-procedure rollup.
const ProcedureLimit = 20

// Analyzer runs aggregate queries. It never writes.
type Analyzer struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func New(pool *pgxpool.Pool, log zerolog.Logger) *Analyzer {
	return &Analyzer{pool: pool, log: log}
}

// ProviderSummary returns every stored provider with line and procedure
// counts and average amounts, busiest first. Providers with no lines report
// zero averages.
func (a *Analyzer) ProviderSummary(ctx context.Context) ([]model.ProviderRollup, error) {
	rows, err := a.pool.Query(ctx, embedsql.ProviderSummary)
	if err != nil {
		return nil, &store.Error{Op: "provider summary", Err: err}
	}
	defer rows.Close()

	var out []model.ProviderRollup
	for rows.Next() {
		var r model.ProviderRollup
		if err := rows.Scan(&r.NPI, &r.PhysicianName, &r.SpecialtyDescription, &r.City, &r.ZipCode,
			&r.TotalProcedures, &r.UniqueProcedureTypes,
			&r.AvgSubmittedCharge, &r.AvgMedicareAllowed, &r.AvgMedicarePayment); err != nil {
			return nil, &store.Error{Op: "provider summary", Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.Error{Op: "provider summary", Err: err}
	}

	a.log.Debug().Int("providers", len(out)).Msg("provider summary")
	return out, nil
}

// CompareProcedures lists every observation of code, cheapest payment
// first. With an empty code it instead ranks the most frequent procedures
// across all providers.
func (a *Analyzer) CompareProcedures(ctx context.Context, code string) (*model.ProcedureComparison, error) {
	code = normalize.NormalizeCode(code)
	if code == "" {
		stats, err := a.procedureStats(ctx)
		if err != nil {
			return nil, err
		}
		return &model.ProcedureComparison{Procedures: stats}, nil
	}

	rows, err := a.pool.Query(ctx, embedsql.ProcedureObservations, code)
	if err != nil {
		return nil, &store.Error{Op: "compare procedures", Err: err}
	}
	defer rows.Close()

	cmp := &model.ProcedureComparison{Code: code}
	for rows.Next() {
		var o model.ProcedureObservation
		if err := rows.Scan(&o.PhysicianName, &o.HCPCSCode, &o.HCPCSDescription, &o.Year,
			&o.LineServiceCount, &o.AverageSubmittedCharge, &o.AverageMedicareAllowed,
			&o.AverageMedicarePayment, &o.City, &o.ZipCode); err != nil {
			return nil, &store.Error{Op: "compare procedures", Err: err}
		}
		cmp.Observations = append(cmp.Observations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.Error{Op: "compare procedures", Err: err}
	}
	return cmp, nil
}

func (a *Analyzer) procedureStats(ctx context.Context) ([]model.ProcedureStats, error) {
	rows, err := a.pool.Query(ctx, embedsql.ProcedureStats, ProcedureLimit)
	if err != nil {
		return nil, &store.Error{Op: "procedure stats", Err: err}
	}
	defer rows.Close()

	var out []model.ProcedureStats
	for rows.Next() {
		var s model.ProcedureStats
		if err := rows.Scan(&s.HCPCSCode, &s.HCPCSDescription, &s.Frequency, &s.ProviderCount,
			&s.AvgSubmittedCharge, &s.AvgMedicareAllowed, &s.AvgMedicarePayment,
			&s.MinPayment, &s.MaxPayment); err != nil {
			return nil, &store.Error{Op: "procedure stats", Err: err}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.Error{Op: "procedure stats", Err: err}
	}
	return out, nil
}

// PriceTrend returns one point per year for code, oldest year first.
func (a *Analyzer) PriceTrend(ctx context.Context, code string) ([]model.TrendPoint, error) {
	rows, err := a.pool.Query(ctx, embedsql.PriceTrend, normalize.NormalizeCode(code))
	if err != nil {
		return nil, &store.Error{Op: "price trend", Err: err}
	}
	defer rows.Close()

	var out []model.TrendPoint
	for rows.Next() {
		var p model.TrendPoint
		if err := rows.Scan(&p.Year, &p.ProcedureCount, &p.AvgSubmitted, &p.AvgAllowed, &p.AvgPayment); err != nil {
			return nil, &store.Error{Op: "price trend", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.Error{Op: "price trend", Err: err}
	}
	return out, nil
}

// DuplicateObservations reports (provider, code, year) observations stored
// more than once, which happens when a year is collected repeatedly.
func (a *Analyzer) DuplicateObservations(ctx context.Context) ([]model.DuplicateGroup, error) {
	rows, err := a.pool.Query(ctx, embedsql.DuplicateObservations)
	if err != nil {
		return nil, &store.Error{Op: "duplicate observations", Err: err}
	}
	defer rows.Close()

	var out []model.DuplicateGroup
	for rows.Next() {
		var g model.DuplicateGroup
		if err := rows.Scan(&g.NPI, &g.HCPCSCode, &g.Year, &g.Rows); err != nil {
			return nil, &store.Error{Op: "duplicate observations", Err: err}
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.Error{Op: "duplicate observations", Err: err}
	}
	return out, nil
}
