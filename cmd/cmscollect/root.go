package main

import (
	"context"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gyeh/providerstats/internal/config"
	"github.com/gyeh/providerstats/internal/db"
	"github.com/gyeh/providerstats/internal/exitcode"
	"github.com/gyeh/providerstats/internal/logging"
)

const envPrefix = "CMSCOLLECT"

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:               "cmscollect",
	Short:             "CMS Medicare provider/service collector",
	Long:              "Collects CMS Medicare Physician & Other Practitioners records for a target specialty set and geography into Postgres, and reports on what was collected.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("dsn", "", "Postgres connection string (or set CMSCOLLECT_DSN)")
	pf.String("log-format", cfg.LogFormat, "Log format: text or json")
	pf.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	pf.String("config", "", "YAML file with zip codes, cities, specialties and dataset ids")
	pf.String("base-url", cfg.BaseURL, "CMS datastore query endpoint")
	pf.Duration("timeout", cfg.Timeout, "Per-request timeout for the CMS API")
}

// loadConfig resolves every flag through viper so each one can also be set
// as CMSCOLLECT_<FLAG> (dashes become underscores).
func loadConfig(cmd *cobra.Command, args []string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg.DSN = v.GetString("dsn")
	cfg.LogFormat = v.GetString("log-format")
	cfg.LogLevel = v.GetString("log-level")
	cfg.BaseURL = v.GetString("base-url")
	cfg.Timeout = v.GetDuration("timeout")
	cfg.TargetsFile = v.GetString("config")

	if cmd.Flags().Lookup("region") != nil {
		cfg.Region = v.GetString("region")
	}
	if cmd.Flags().Lookup("limit") != nil {
		cfg.RecordLimit = v.GetInt("limit")
	}
	if cmd.Flags().Lookup("pause") != nil {
		cfg.Pause = v.GetDuration("pause")
	}

	if cfg.TargetsFile != "" {
		if err := cfg.LoadFromFile(cfg.TargetsFile); err != nil {
			return err
		}
	}
	return nil
}

// connect opens the pool or exits with the matching code.
func connect(ctx context.Context, log zerolog.Logger) *pgxpool.Pool {
	if cfg.DSN == "" {
		log.Error().Msg("--dsn or CMSCOLLECT_DSN is required")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	return pool
}

func newLogger() zerolog.Logger {
	return logging.Setup(cfg.LogFormat, cfg.LogLevel)
}
