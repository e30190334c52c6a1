package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the slice of *pgxpool.Pool that readiness checks need
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolOptions tunes the claim store connection pool
type PoolOptions struct {
	MaxConns int
	MaxIdle  time.Duration
	MaxLife  time.Duration
	// AppName shows up in pg_stat_activity; empty keeps the server default
	AppName string
}

// DefaultPoolOptions suits a single API instance
func DefaultPoolOptions() PoolOptions {
	return PoolOptions{
		MaxConns: DefaultMaxConnections,
		MaxIdle:  DefaultMaxConnIdleTime,
		MaxLife:  DefaultMaxConnLifetime,
		AppName:  DefaultApplicationName,
	}
}

// NewPool connects to PostgreSQL and pings once before returning
func NewPool(ctx context.Context, connString string, opts PoolOptions) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	cfg.MaxConns = int32(min(max(opts.MaxConns, 1), math.MaxInt32))
	cfg.MinConns = min(DefaultMinConnections, cfg.MaxConns)
	if opts.MaxIdle > 0 {
		cfg.MaxConnIdleTime = opts.MaxIdle
	}
	if opts.MaxLife > 0 {
		cfg.MaxConnLifetime = opts.MaxLife
	}
	cfg.HealthCheckPeriod = DefaultHealthCheckPeriod
	if opts.AppName != "" {
		cfg.ConnConfig.RuntimeParams["application_name"] = opts.AppName
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", cfg.MaxConns,
		"min_conns", cfg.MinConns,
		"host", cfg.ConnConfig.Host)
	return pool, nil
}
