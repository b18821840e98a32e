package sql

import (
	"embed"
)

// Migrations holds the schema DDL, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/upsert_provider.sql
var UpsertProvider string

//go:embed queries/insert_run_log.sql
var InsertRunLog string

//go:embed queries/count_providers.sql
var CountProviders string

//go:embed queries/period_counts.sql
var PeriodCounts string

//go:embed queries/top_procedures.sql
var TopProcedures string

//go:embed queries/recent_runs.sql
var RecentRuns string

//go:embed queries/list_service_lines.sql
var ListServiceLines string

//go:embed queries/provider_summary.sql
var ProviderSummary string

//go:embed queries/procedure_observations.sql
var ProcedureObservations string

//go:embed queries/procedure_stats.sql
var ProcedureStats string

//go:embed queries/price_trend.sql
var PriceTrend string

//go:embed queries/duplicate_observations.sql
var DuplicateObservations string
