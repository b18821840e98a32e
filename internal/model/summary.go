package model

import (
	"time"

	"github.com/google/uuid"
)

// PeriodResult captures the outcome of collecting a single year.
type PeriodResult struct {
	Year      int
	Status    RunStatus
	Providers int
	Lines     int
	Error     string
	Duration  time.Duration
}

// RunResult holds one PeriodResult per requested year, in request order.
type RunResult struct {
	RunID   uuid.UUID
	Periods []PeriodResult
}

// Totals sums providers and service lines across all periods.
func (r *RunResult) Totals() (providers, lines int) {
	for _, p := range r.Periods {
		providers += p.Providers
		lines += p.Lines
	}
	return providers, lines
}

// Failed reports how many periods ended with an error.
func (r *RunResult) Failed() int {
	n := 0
	for _, p := range r.Periods {
		if p.Error != "" {
			n++
		}
	}
	return n
}

// PeriodCount is the per-year volume of stored service lines.
type PeriodCount struct {
	Year      int
	Lines     int64
	Providers int64
}

// ProcedureFrequency is one row of the top-procedures rollup.
type ProcedureFrequency struct {
	HCPCSCode        string
	HCPCSDescription string
	Frequency        int64
	AvgSubmitted     float64
	AvgAllowed       float64
	AvgPayment       float64
}

// CollectionSummary is the overview printed after a collection run.
type CollectionSummary struct {
	TotalProviders int64
	Periods        []PeriodCount
	TopProcedures  []ProcedureFrequency
	RecentRuns     []CollectionRun
}
