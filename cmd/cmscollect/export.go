package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/providerstats/internal/exitcode"
	"github.com/gyeh/providerstats/internal/parquetio"
	"github.com/gyeh/providerstats/internal/store"
)

var exportYear int

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write stored service lines to a Parquet snapshot",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&cfg.OutPath, "out", "", "Output Parquet file (required)")
	f.IntVar(&exportYear, "year", 0, "Only export this year (0 exports all)")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := newLogger()
	ctx := context.Background()

	pool := connect(ctx, log)
	defer pool.Close()

	rows, err := store.New(pool, log).ListServiceLines(ctx, exportYear)
	if err != nil {
		log.Error().Err(err).Msg("export query failed")
		os.Exit(exitcode.StoreError)
	}

	n, err := parquetio.WriteFile(cfg.OutPath, rows)
	if err != nil {
		log.Error().Err(err).Str("out", cfg.OutPath).Msg("write snapshot failed")
		os.Exit(exitcode.ValidationError)
	}

	log.Info().Int("rows", n).Str("out", cfg.OutPath).Msg("snapshot written")
	fmt.Printf("Exported %d service lines to %s\n", n, cfg.OutPath)
	return nil
}
