// Package collect drives per-year collection: fetch, classify, extract,
// deduplicate, persist, and record the outcome in the run log.
package collect

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/providerstats/internal/model"
	"github.com/gyeh/providerstats/internal/normalize"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultRecordLimit = 2000
	DefaultPause       = 2 * time.Second
)

// Fetcher retrieves the raw records published for one year.
type Fetcher interface {
	Fetch(ctx context.Context, year, limit int) ([]model.RawRecord, error)
}

// Store is the persistence the collector writes to.
type Store interface {
	UpsertProviders(ctx context.Context, providers []model.Provider) error
	AppendServiceLines(ctx context.Context, runID uuid.UUID, lines []model.ServiceLine) (int64, error)
	AppendRunLog(ctx context.Context, run model.CollectionRun) error
}

// Classifier decides whether a raw record is in scope.
type Classifier interface {
	Accept(rec model.RawRecord) bool
}

// PeriodError wraps an error with the year and phase where it occurred.
type PeriodError struct {
	Period int
	Phase  string
	Err    error
}

func (e *PeriodError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PeriodError) Unwrap() error {
	return e.Err
}

// Options tunes a Collector.
type Options struct {
	RecordLimit int           // record cap per fetch
	Pause       time.Duration // wait between consecutive years; negative disables
}

// Collector runs collections against an explicit fetcher and store.
type Collector struct {
	fetcher    Fetcher
	store      Store
	classifier Classifier
	log        zerolog.Logger
	opts       Options
}

// New creates a Collector. Zero option fields take the package defaults.
func New(f Fetcher, s Store, c Classifier, log zerolog.Logger, opts Options) *Collector {
	if opts.RecordLimit <= 0 {
		opts.RecordLimit = DefaultRecordLimit
	}
	if opts.Pause == 0 {
		opts.Pause = DefaultPause
	}
	return &Collector{
		fetcher:    f,
		store:      s,
		classifier: c,
		log:        log,
		opts:       opts,
	}
}

// CollectPeriod collects one year. Failures inside the year are recorded as
// a FAILED run log and reported in the result, never returned. The returned
// error is non-nil only when that FAILED log itself could not be written.
func (c *Collector) CollectPeriod(ctx context.Context, runID uuid.UUID, year int) (model.PeriodResult, error) {
	start := time.Now()
	log := c.log.With().Int("year", year).Str("run_id", runID.String()).Logger()
	log.Info().Msg("collecting year")

	res, perr := c.collectPeriod(ctx, log, runID, year)
	res.Year = year
	res.Duration = time.Since(start)
	if perr == nil {
		log.Info().
			Str("status", string(res.Status)).
			Int("providers", res.Providers).
			Int("lines", res.Lines).
			Dur("duration", res.Duration).
			Msg("year complete")
		return res, nil
	}

	msg := normalize.CleanText(perr.Error())
	log.Error().Err(perr.Err).Str("phase", perr.Phase).Msg("year failed")

	failed := model.PeriodResult{
		Year:     year,
		Status:   model.StatusFailed,
		Error:    msg,
		Duration: res.Duration,
	}
	// The failure must be recorded even when ctx is what failed the year.
	logCtx := context.WithoutCancel(ctx)
	if err := c.store.AppendRunLog(logCtx, model.CollectionRun{
		RunID:        runID,
		Year:         year,
		Status:       model.StatusFailed,
		ErrorMessage: &msg,
	}); err != nil {
		log.Error().Err(err).Msg("failed to record failed run")
		return failed, fmt.Errorf("record failure for year %d: %w", year, err)
	}
	return failed, nil
}

func (c *Collector) collectPeriod(ctx context.Context, log zerolog.Logger, runID uuid.UUID, year int) (res model.PeriodResult, perr *PeriodError) {
	phase := "fetch"
	defer func() {
		if r := recover(); r != nil {
			res = model.PeriodResult{}
			perr = &PeriodError{Period: year, Phase: phase, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	records, err := c.fetcher.Fetch(ctx, year, c.opts.RecordLimit)
	if err != nil {
		return res, &PeriodError{Period: year, Phase: phase, Err: err}
	}
	log.Debug().Int("records", len(records)).Msg("fetched")

	if len(records) == 0 {
		log.Warn().Msg("no records returned")
		return c.noData(ctx, runID, year)
	}

	phase = "extract"
	b := extract(records, year, c.classifier)
	providers := b.Providers()
	log.Debug().
		Int("accepted", b.accepted).
		Int("providers", len(providers)).
		Int("lines", len(b.lines)).
		Msg("extracted")
	if b.accepted == 0 {
		log.Warn().Int("records", len(records)).Msg("no records matched targets")
		return c.noData(ctx, runID, year)
	}

	phase = "upsert"
	if err := c.store.UpsertProviders(ctx, providers); err != nil {
		return res, &PeriodError{Period: year, Phase: phase, Err: err}
	}

	phase = "append"
	n, err := c.store.AppendServiceLines(ctx, runID, b.lines)
	if err != nil {
		return res, &PeriodError{Period: year, Phase: phase, Err: err}
	}

	phase = "log"
	if err := c.store.AppendRunLog(ctx, model.CollectionRun{
		RunID:            runID,
		Year:             year,
		Status:           model.StatusSuccess,
		RecordsCollected: int(n),
		ProvidersFound:   len(providers),
	}); err != nil {
		return res, &PeriodError{Period: year, Phase: phase, Err: err}
	}

	return model.PeriodResult{
		Status:    model.StatusSuccess,
		Providers: len(providers),
		Lines:     int(n),
	}, nil
}

func (c *Collector) noData(ctx context.Context, runID uuid.UUID, year int) (model.PeriodResult, *PeriodError) {
	if err := c.store.AppendRunLog(ctx, model.CollectionRun{
		RunID:  runID,
		Year:   year,
		Status: model.StatusNoData,
	}); err != nil {
		return model.PeriodResult{}, &PeriodError{Period: year, Phase: "log", Err: err}
	}
	return model.PeriodResult{Status: model.StatusNoData}, nil
}
