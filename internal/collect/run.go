package collect

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gyeh/providerstats/internal/model"
)

// CollectRun collects each year in the given order, pausing between years.
// A failed year never stops the run: the result always holds one entry per
// requested year. Once ctx is done the remaining years are marked with the
// context error without being fetched or logged. The returned error is the
// first failure to record a FAILED run log, if any.
func (c *Collector) CollectRun(ctx context.Context, years []int) (*model.RunResult, error) {
	runID := uuid.New()
	start := time.Now()
	log := c.log.With().Str("run_id", runID.String()).Logger()
	log.Info().Ints("years", years).Msg("starting collection run")

	result := &model.RunResult{RunID: runID, Periods: make([]model.PeriodResult, 0, len(years))}
	var firstErr error

	for i, year := range years {
		if i > 0 {
			if err := c.pause(ctx); err != nil {
				result.Periods = append(result.Periods, skipped(years[i:], err)...)
				break
			}
		}
		if err := ctx.Err(); err != nil {
			result.Periods = append(result.Periods, skipped(years[i:], err)...)
			break
		}

		res, err := c.CollectPeriod(ctx, runID, year)
		if err != nil {
			res.Error = fmt.Sprintf("%s; %s", res.Error, err)
			if firstErr == nil {
				firstErr = err
			}
		}
		result.Periods = append(result.Periods, res)
	}

	providers, lines := result.Totals()
	log.Info().
		Int("providers", providers).
		Int("lines", lines).
		Int("failed", result.Failed()).
		Dur("duration", time.Since(start)).
		Msg("collection run complete")

	return result, firstErr
}

func (c *Collector) pause(ctx context.Context) error {
	if c.opts.Pause <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.opts.Pause)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func skipped(years []int, err error) []model.PeriodResult {
	out := make([]model.PeriodResult, len(years))
	for i, y := range years {
		out[i] = model.PeriodResult{Year: y, Status: model.StatusFailed, Error: err.Error()}
	}
	return out
}
