package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/providerstats/internal/exitcode"
	"github.com/gyeh/providerstats/internal/model"
	"github.com/gyeh/providerstats/internal/store"
)

var (
	summaryTop    int
	summaryRecent int
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print totals, per-year counts, top procedures and recent runs",
	RunE:  runSummary,
}

func init() {
	f := summaryCmd.Flags()
	f.IntVar(&summaryTop, "top", 10, "Number of top procedures")
	f.IntVar(&summaryRecent, "recent", 10, "Number of recent run logs")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	log := newLogger()
	ctx := context.Background()

	pool := connect(ctx, log)
	defer pool.Close()

	sum, err := store.New(pool, log).Summary(ctx, summaryTop, summaryRecent)
	if err != nil {
		log.Error().Err(err).Msg("summary failed")
		os.Exit(exitcode.StoreError)
	}
	printSummary(sum)
	return nil
}

func printSummary(s *model.CollectionSummary) {
	fmt.Println("=== collection summary ===")
	fmt.Printf("Total providers: %d\n", s.TotalProviders)

	fmt.Println("\nBy year:")
	for _, p := range s.Periods {
		fmt.Printf("  %d  %8d lines  %6d providers\n", p.Year, p.Lines, p.Providers)
	}

	fmt.Println("\nTop procedures:")
	for _, p := range s.TopProcedures {
		fmt.Printf("  %-6s %6d  submitted $%10.2f  allowed $%10.2f  paid $%10.2f  %s\n",
			p.HCPCSCode, p.Frequency, p.AvgSubmitted, p.AvgAllowed, p.AvgPayment, p.HCPCSDescription)
	}

	fmt.Println("\nRecent runs:")
	for _, r := range s.RecentRuns {
		msg := ""
		if r.ErrorMessage != nil {
			msg = *r.ErrorMessage
		}
		fmt.Printf("  %s  %d  %-8s %6d records %5d providers  %s\n",
			r.Timestamp.Format("2006-01-02 15:04:05"), r.Year, r.Status,
			r.RecordsCollected, r.ProvidersFound, msg)
	}
}
