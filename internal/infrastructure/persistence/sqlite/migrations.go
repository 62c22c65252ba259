package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/bnema/dimmer/internal/logging"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// RunMigrations brings the schema up to date from the embedded SQL files.
// Safe to run on every startup; goose tracks the applied version in the
// database itself.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log := logging.FromContext(ctx)

	goose.SetBaseFS(migrationFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	// A fresh database has no version table yet; treat that as version 0.
	before, err := goose.GetDBVersion(db)
	if err != nil {
		before = 0
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	after, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if after != before {
		log.Info().Int64("from", before).Int64("to", after).Msg("schema migrated")
	} else {
		log.Debug().Int64("version", after).Msg("schema up to date")
	}
	return nil
}
