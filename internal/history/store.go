// Package history persists per-category risk observations in SQL, backing
// the trend engine. Both postgres and sqlite3 are supported through sqlx.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver for local deployments

	"github.com/northwatch/harmscan/internal/config"
	"github.com/northwatch/harmscan/internal/domain"
)

const pingTimeout = 5 * time.Second

const schema = `
CREATE TABLE IF NOT EXISTS trend_history (
	id          INTEGER PRIMARY KEY,
	category    TEXT NOT NULL,
	score       REAL NOT NULL,
	observed_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trend_history_category
	ON trend_history (category, observed_at);
`

// postgres wants a sequence-backed id column.
const schemaPostgres = `
CREATE TABLE IF NOT EXISTS trend_history (
	id          BIGSERIAL PRIMARY KEY,
	category    TEXT NOT NULL,
	score       DOUBLE PRECISION NOT NULL,
	observed_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trend_history_category
	ON trend_history (category, observed_at);
`

// Store records and retrieves trend observations.
type Store struct {
	db *sqlx.DB
}

// Open connects to the configured database, verifies the connection, and
// ensures the schema exists.
func Open(cfg config.DatabaseConfig) (*Store, error) {
	db, err := sqlx.Connect(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if pingErr := db.PingContext(ctx); pingErr != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", pingErr)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewStore wraps an existing connection; the caller owns migration. Used in
// tests with in-memory sqlite.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) migrate() error {
	ddl := schema
	if s.db.DriverName() == "postgres" {
		ddl = schemaPostgres
	}
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Migrate ensures the schema exists. Exposed for stores built with NewStore.
func (s *Store) Migrate() error {
	return s.migrate()
}

// Record inserts one observation for a category.
func (s *Store) Record(ctx context.Context, category string, score float64, observedAt time.Time) error {
	query := s.db.Rebind(
		`INSERT INTO trend_history (category, score, observed_at) VALUES (?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, query, category, score, observedAt.UTC()); err != nil {
		return fmt.Errorf("record trend point: %w", err)
	}
	return nil
}

// PointsByCategory returns all observations for a category ordered by
// observation time ascending.
func (s *Store) PointsByCategory(ctx context.Context, category string) ([]domain.TrendPoint, error) {
	query := s.db.Rebind(
		`SELECT id, category, score, observed_at
		   FROM trend_history
		  WHERE category = ?
		  ORDER BY observed_at ASC`)

	var points []domain.TrendPoint
	if err := s.db.SelectContext(ctx, &points, query, category); err != nil {
		return nil, fmt.Errorf("load trend points: %w", err)
	}
	return points, nil
}

// Count returns the total number of recorded observations.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM trend_history`); err != nil {
		return 0, fmt.Errorf("count trend points: %w", err)
	}
	return count, nil
}

// Ping verifies database connectivity, for health checks.
func (s *Store) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
