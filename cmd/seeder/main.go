// Command seeder populates the lexicon reference data from a TSV dump and
// builds the prefix-suggestion index. It is intended to be run offline,
// not as part of serving traffic.
//
// Flags:
//
//	--dry-run        parse the dataset without writing to DB or index
//	--migrate        apply schema migrations before loading
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/stepbible/step-vocab/internal/adapter/postgres"
	"github.com/stepbible/step-vocab/internal/adapter/postgres/definition"
	"github.com/stepbible/step-vocab/internal/adapter/search"
	"github.com/stepbible/step-vocab/internal/app"
	"github.com/stepbible/step-vocab/internal/app/seeder"
	"github.com/stepbible/step-vocab/internal/config"
	"github.com/stepbible/step-vocab/migrations"
)

// Compile-time interface assertion.
var _ seeder.DefinitionBulkRepo = (*definition.Repo)(nil)

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "parse the dataset without writing to DB or index")
	migrateFlag := flag.Bool("migrate", false, "apply schema migrations before loading")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection and index path).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)
	logger.Info("seeder starting", "version", app.BuildVersion())

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	// 30-minute context timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if *migrateFlag && !seederCfg.DryRun {
		if err := migrate(ctx, appCfg.Database.DSN); err != nil {
			logger.Error("apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	idx, err := search.Open(appCfg.Suggest.IndexPath)
	if err != nil {
		logger.Error("open suggestion index", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer idx.Close()

	pipeline := seeder.NewPipeline(logger, definition.New(pool), idx, *seederCfg)

	summary, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("lexicon load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeder done",
		"load_id", summary.LoadID,
		"parsed", summary.Parsed,
		"skipped", summary.Skipped,
		"inserted", summary.Inserted,
		"indexed", summary.Indexed,
		"total", summary.Total,
		"duration", summary.Duration,
	)
}

// migrate applies the embedded goose migrations.
// goose requires database/sql, so a short-lived *sql.DB is used here.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
