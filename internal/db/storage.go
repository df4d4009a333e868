// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
)

var _ DBClientInterface = (*DBClient)(nil)

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

func (c Config) poolConfig() (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	pc.MaxConns = c.MaxConns
	pc.MinConns = c.MinConns
	pc.MaxConnLifetime = c.MaxConnLifetime
	// 10% jitter spreads reconnects across the pool
	pc.MaxConnLifetimeJitter = c.MaxConnLifetime / 10
	pc.MaxConnIdleTime = c.MaxConnIdleTime

	if c.TracingEnabled {
		pc.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	return pc, nil
}

// DBClient exposes a pgx pool through database/sql so squirrel can run on it.
type DBClient struct {
	pool *pgxpool.Pool
	conn *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *DBClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(d.conn)
}

func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	return d.conn.PingContext(ctx)
}

func (d *DBClient) Close() {
	if d.conn != nil {
		if err := d.conn.Close(); err != nil {
			d.logger.Warnf("failed to close database handle: %v", err)
		}
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens the pool and checks connectivity before returning.
func NewDBClient(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	pc, err := cfg.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to record pool stats: %w", err)
		}
	}

	d := new(DBClient)
	d.pool = pool
	d.conn = stdlib.OpenDBFromPool(pool)

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	if err := d.Ping(ctx); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	logger.Debugf("database pool ready, max conns %d", cfg.MaxConns)

	return d, nil
}
