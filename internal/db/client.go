// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
)

const defaultTxTimeout = time.Second * 60

type txContextKey struct{}
type lazyTxContextKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// lazyTx holds a transaction that is only opened on the first statement
type lazyTx struct {
	db        *sql.DB
	tx        TxInterface
	committed bool
	cancel    context.CancelFunc
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	// detached from the request context so a client disconnect does not
	// roll back a transaction halfway through the handler
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

func (lt *lazyTx) started() bool {
	return lt.tx != nil
}

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	runner sq.BaseRunner

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a squirrel builder bound to the transaction carried by
// ctx, if any, or to the pool otherwise
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	if lt := lazyTxFromContext(ctx); lt != nil {
		tx, err := lt.get()
		if err == nil {
			return builder.RunWith(tx)
		}
		d.logger.Errorf("failed to open lazy transaction: %v", err)
	}

	if tx := TxFromContext(ctx); tx != nil {
		return builder.RunWith(tx)
	}

	return builder.RunWith(d.runner)
}

// BeginTx starts a new transaction and returns a context with the transaction attached.
func (d *DBClient) BeginTx(ctx context.Context) (context.Context, TxInterface, error) {
	tx, err := d.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return ctx, nil, err
	}

	return ContextWithTx(ctx, tx), tx, nil
}

// WithTx runs fn inside a transaction that is opened on first use.
// A nested call reuses the outer transaction and leaves commit to the caller
// that opened it.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if lazyTxFromContext(ctx) != nil || TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	lt := &lazyTx{db: d.db}
	txCtx := context.WithValue(ctx, lazyTxContextKey{}, lt)

	defer func() {
		if lt.started() && !lt.committed {
			if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if !lt.started() {
		return nil
	}

	if err := lt.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	lt.committed = true

	return nil
}

// Ping checks the database and reports its availability to the monitor
func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	err := d.db.PingContext(ctx)

	available := 1.0
	if err != nil {
		available = 0
	}

	if mErr := d.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, available); mErr != nil {
		d.logger.Debugf("failed to record database availability: %v", mErr)
	}

	return err
}

// DB exposes the database/sql handle, used by the migration provider
func (d *DBClient) DB() *sql.DB {
	return d.db
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// ContextWithTx returns a new context with the transaction attached.
func ContextWithTx(ctx context.Context, tx TxInterface) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext extracts a transaction from the context, returning nil if none exists.
func TxFromContext(ctx context.Context) TxInterface {
	if tx, ok := ctx.Value(txContextKey{}).(TxInterface); ok {
		return tx
	}
	return nil
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	if lt, ok := ctx.Value(lazyTxContextKey{}).(*lazyTx); ok {
		return lt
	}
	return nil
}

// NewDBClient opens a pgx pool for cfg.DSN and wraps it in a database/sql handle
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %v", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	if cfg.MaxConns > 0 {
		config.MaxConns = cfg.MaxConns
	}
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db
	d.runner = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
