package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/istpublications/intake-backend/migrations"
)

// Migrate applies every pending embedded migration to the database at dsn
// and returns how many were applied.
func Migrate(ctx context.Context, dsn string) (int, error) {
	var applied int
	err := withProvider(ctx, dsn, func(p *goose.Provider) error {
		results, err := p.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		applied = len(results)
		return nil
	})
	return applied, err
}

// MigrationStatus reports the state of every embedded migration.
func MigrationStatus(ctx context.Context, dsn string) ([]*goose.MigrationStatus, error) {
	var statuses []*goose.MigrationStatus
	err := withProvider(ctx, dsn, func(p *goose.Provider) error {
		var err error
		if statuses, err = p.Status(ctx); err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		return nil
	})
	return statuses, err
}

// goose needs database/sql, so migrations open their own short-lived
// connection instead of borrowing the pgx pool.
func withProvider(ctx context.Context, dsn string, fn func(p *goose.Provider) error) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	return fn(provider)
}
