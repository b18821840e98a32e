package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/providerstats/internal/analysis"
	"github.com/gyeh/providerstats/internal/exitcode"
)

var analyzeCode string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Read-only reports over collected data",
}

var analyzeProvidersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Per-provider line counts and average amounts",
	RunE:  runAnalyzeProviders,
}

var analyzeProceduresCmd = &cobra.Command{
	Use:   "procedures",
	Short: "Compare one procedure across providers, or rank all procedures",
	RunE:  runAnalyzeProcedures,
}

var analyzeTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Year-over-year price trend for one procedure",
	RunE:  runAnalyzeTrend,
}

var analyzeDuplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Observations stored more than once by repeated collections",
	RunE:  runAnalyzeDuplicates,
}

func init() {
	analyzeProceduresCmd.Flags().StringVar(&analyzeCode, "code", "", "HCPCS code (omit to rank all procedures)")
	analyzeTrendCmd.Flags().StringVar(&analyzeCode, "code", "", "HCPCS code (required)")
	_ = analyzeTrendCmd.MarkFlagRequired("code")

	analyzeCmd.AddCommand(analyzeProvidersCmd, analyzeProceduresCmd, analyzeTrendCmd, analyzeDuplicatesCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func newAnalyzer(ctx context.Context) (*analysis.Analyzer, func()) {
	log := newLogger()
	pool := connect(ctx, log)
	return analysis.New(pool, log), pool.Close
}

func runAnalyzeProviders(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, done := newAnalyzer(ctx)
	defer done()

	rows, err := a.ProviderSummary(ctx)
	if err != nil {
		return exitOnStoreError(err)
	}
	fmt.Printf("%-10s %-28s %-28s %-14s %-5s %6s %6s %10s %10s %10s\n",
		"NPI", "Name", "Specialty", "City", "Zip", "Lines", "Codes", "Submitted", "Allowed", "Paid")
	for _, r := range rows {
		fmt.Printf("%-10s %-28s %-28s %-14s %-5s %6d %6d %10.2f %10.2f %10.2f\n",
			r.NPI, r.PhysicianName, r.SpecialtyDescription, r.City, r.ZipCode,
			r.TotalProcedures, r.UniqueProcedureTypes,
			r.AvgSubmittedCharge, r.AvgMedicareAllowed, r.AvgMedicarePayment)
	}
	return nil
}

func runAnalyzeProcedures(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, done := newAnalyzer(ctx)
	defer done()

	cmp, err := a.CompareProcedures(ctx, analyzeCode)
	if err != nil {
		return exitOnStoreError(err)
	}

	if cmp.Code == "" {
		fmt.Printf("%-6s %6s %9s %10s %10s %10s %10s %10s  %s\n",
			"Code", "Freq", "Providers", "Submitted", "Allowed", "Paid", "MinPaid", "MaxPaid", "Description")
		for _, p := range cmp.Procedures {
			fmt.Printf("%-6s %6d %9d %10.2f %10.2f %10.2f %10.2f %10.2f  %s\n",
				p.HCPCSCode, p.Frequency, p.ProviderCount,
				p.AvgSubmittedCharge, p.AvgMedicareAllowed, p.AvgMedicarePayment,
				p.MinPayment, p.MaxPayment, p.HCPCSDescription)
		}
		return nil
	}

	fmt.Printf("=== %s: %d observations ===\n", cmp.Code, len(cmp.Observations))
	for _, o := range cmp.Observations {
		fmt.Printf("%-28s %d %6d %10.2f %10.2f %10.2f  %s %s\n",
			o.PhysicianName, o.Year, o.LineServiceCount,
			o.AverageSubmittedCharge, o.AverageMedicareAllowed, o.AverageMedicarePayment,
			o.City, o.ZipCode)
	}
	return nil
}

func runAnalyzeTrend(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, done := newAnalyzer(ctx)
	defer done()

	points, err := a.PriceTrend(ctx, analyzeCode)
	if err != nil {
		return exitOnStoreError(err)
	}
	fmt.Printf("%-6s %6s %10s %10s %10s\n", "Year", "Count", "Submitted", "Allowed", "Paid")
	for _, p := range points {
		fmt.Printf("%-6d %6d %10.2f %10.2f %10.2f\n",
			p.Year, p.ProcedureCount, p.AvgSubmitted, p.AvgAllowed, p.AvgPayment)
	}
	return nil
}

func runAnalyzeDuplicates(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, done := newAnalyzer(ctx)
	defer done()

	groups, err := a.DuplicateObservations(ctx)
	if err != nil {
		return exitOnStoreError(err)
	}
	if len(groups) == 0 {
		fmt.Println("No duplicate observations.")
		return nil
	}
	for _, g := range groups {
		fmt.Printf("%-10s %-6s %d  %d rows\n", g.NPI, g.HCPCSCode, g.Year, g.Rows)
	}
	return nil
}

func exitOnStoreError(err error) error {
	log := newLogger()
	log.Error().Err(err).Msg("query failed")
	os.Exit(exitcode.StoreError)
	return err
}
