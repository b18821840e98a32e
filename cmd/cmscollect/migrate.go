package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/providerstats/internal/exitcode"
	"github.com/gyeh/providerstats/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the collector schema if it does not exist",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log := newLogger()
	ctx := context.Background()

	pool := connect(ctx, log)
	defer pool.Close()

	if err := store.New(pool, log).Init(ctx); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(exitcode.StoreError)
	}

	log.Info().Msg("all migrations applied successfully")
	return nil
}
