package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"seoplanner/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevData inserts a few keywords for development. Skips rows that already
// exist.
func (d *DB) SeedDevData(ctx context.Context) error {
	keywords := []struct {
		keyword     string
		volume      int
		difficulty  float64
		cpc         float64
		competition string
	}{
		{"digital marketing", 8200, 72.50, 4.10, "high"},
		{"content strategy", 3400, 55.25, 2.80, "medium"},
		{"keyword research", 5100, 48.00, 3.20, "medium"},
		{"on-page seo", 2700, 36.75, 1.90, "low"},
	}

	query := `
		INSERT INTO keywords (keyword, search_volume, difficulty, cpc, competition)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (keyword) DO NOTHING
	`

	for _, kw := range keywords {
		if _, err := d.Pool.Exec(ctx, query, kw.keyword, kw.volume, kw.difficulty, kw.cpc, kw.competition); err != nil {
			return fmt.Errorf("failed to seed keyword %s: %w", kw.keyword, err)
		}
	}

	return nil
}
