package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poultrymitra/mitra_backend/internal/utils/retry"
)

// NewPgxPool creates a new PostgreSQL connection pool. When ping is set the
// first connection is retried with policy until the database answers.
func NewPgxPool(ctx context.Context, databaseURL string, ping bool, policy retry.Policy) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if ping {
		policy.OnRetry = func(err error, wait time.Duration) {
			slog.Warn("Database not ready, retrying", slog.String("error", err.Error()), slog.Duration("wait", wait))
		}
		if err := retry.Do(ctx, policy, pool.Ping); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	}

	slog.Info("Connected to PostgreSQL database.")
	return pool, nil
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
		slog.Info("PostgreSQL connection pool closed.")
	}
}
