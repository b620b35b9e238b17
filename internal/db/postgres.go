// Package db owns the database connection lifecycle: readiness
// waiting, schema migrations and the ORM handle built on top of a
// shared connection pool.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Pinger is the readiness probe surface of a connection pool.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Open creates the Postgres connection pool. The pool is lazy; use
// WaitUntilReady before relying on it.
func Open(databaseURL string) (*sql.DB, error) {
	pool, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	pool.SetMaxOpenConns(25)
	pool.SetMaxIdleConns(5)
	pool.SetConnMaxLifetime(30 * time.Minute)
	return pool, nil
}

// WaitUntilReady blocks until the database accepts connections,
// probing at the given interval. A zero timeout retries indefinitely;
// a positive timeout bounds the wait. Context cancellation stops the
// loop either way.
func WaitUntilReady(ctx context.Context, pool Pinger, interval, timeout time.Duration, logger *logrus.Logger) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	attempt := 0
	for {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, interval)
		err := pool.PingContext(pingCtx)
		cancel()
		if err == nil {
			logger.Infof("database ready after %d attempt(s)", attempt)
			return nil
		}

		logger.Warnf("database not ready (attempt %d): %v", attempt, err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(interval):
		}
	}
}

// NewGorm wraps an existing connection pool in a gorm handle. Debug
// mode enables per-query logging.
func NewGorm(pool *sql.DB, debug bool) (*gorm.DB, error) {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return gdb, nil
}
