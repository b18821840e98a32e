package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyeh/providerstats/internal/classify"
	"github.com/gyeh/providerstats/internal/collect"
	"github.com/gyeh/providerstats/internal/exitcode"
	"github.com/gyeh/providerstats/internal/fetch"
	"github.com/gyeh/providerstats/internal/model"
	"github.com/gyeh/providerstats/internal/store"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect one or more reporting years from the CMS API",
	Long:  "Fetches each year, keeps records in the target geography and specialties, upserts providers, appends service lines and records a run log row per year. Prints the run result and the collection summary.",
	RunE:  runCollect,
}

func init() {
	f := collectCmd.Flags()
	f.IntSliceVar(&cfg.Years, "years", cfg.Years, "Reporting years to collect, in order")
	f.String("region", cfg.Region, "State filter sent with each request")
	f.Int("limit", cfg.RecordLimit, "Maximum records requested per year")
	f.Duration("pause", cfg.Pause, "Wait between consecutive years (0 disables)")
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	log := newLogger()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool := connect(ctx, log)
	defer pool.Close()

	st := store.New(pool, log)
	if err := st.Init(ctx); err != nil {
		log.Error().Err(err).Msg("schema setup failed")
		os.Exit(exitcode.StoreError)
	}

	pause := cfg.Pause
	if pause == 0 {
		pause = -1
	}
	c := collect.New(
		fetch.New(cfg.BaseURL, cfg.Region, cfg.Targets.Datasets, cfg.Timeout),
		st,
		classify.New(cfg.Targets),
		log,
		collect.Options{RecordLimit: cfg.RecordLimit, Pause: pause},
	)

	result, runErr := c.CollectRun(ctx, cfg.Years)
	printRun(result)

	sum, err := st.Summary(context.WithoutCancel(ctx), 10, 10)
	if err != nil {
		log.Warn().Err(err).Msg("could not load collection summary")
	} else {
		fmt.Println()
		printSummary(sum)
	}

	failed := result.Failed()
	switch {
	case runErr != nil:
		log.Error().Err(runErr).Msg("run log could not be written")
		os.Exit(exitcode.StoreError)
	case failed == len(result.Periods) && failed > 0:
		os.Exit(exitcode.FetchError)
	case failed > 0:
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

func printRun(r *model.RunResult) {
	fmt.Printf("=== collection run %s ===\n", r.RunID)
	fmt.Printf("%-6s %-8s %10s %8s %9s  %s\n", "Year", "Status", "Providers", "Lines", "Duration", "Error")
	for _, p := range r.Periods {
		fmt.Printf("%-6d %-8s %10d %8d %9s  %s\n",
			p.Year, p.Status, p.Providers, p.Lines, p.Duration.Round(time.Millisecond), p.Error)
	}
	providers, lines := r.Totals()
	fmt.Printf("Total: %d providers, %d service lines, %d failed years\n", providers, lines, r.Failed())
}
