// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// dirPermissions is the permission mode for the database directory.
const dirPermissions = 0o750

// DB owns a single connection to the cache database file.
//
// The handle connects lazily: Query connects on first use. Connect is
// idempotent. The handle is safe for use from multiple goroutines, though
// statements are serialized through its one connection.
type DB struct {
	path    string
	pathErr error
	timeout time.Duration
	logger  *slog.Logger
	metrics *Metrics

	mu   sync.Mutex
	conn *sql.DB
}

// New returns an unconnected handle for cfg.Path.
// An empty path resolves to DefaultPath(). If the home directory cannot be
// found, the error is returned by the first Connect or Query.
func New(cfg Config) *DB {
	cfg = cfg.defaults()
	path, err := cfg.resolvePath()
	return &DB{
		path:    path,
		pathErr: err,
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// Path returns the filesystem path to the database file.
func (db *DB) Path() string {
	return db.path
}

// Timeout returns the lock acquisition timeout.
func (db *DB) Timeout() time.Duration {
	return db.timeout
}

// Connected returns true if the handle holds a connection.
func (db *DB) Connected() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.conn != nil
}

// Connect opens the connection if the handle does not already hold one.
// Calling Connect on a connected handle does nothing.
func (db *DB) Connect(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.connect(ctx)
}

// connect must be called with db.mu held.
func (db *DB) connect(ctx context.Context) error {
	if db.conn != nil {
		return nil
	}

	if db.pathErr != nil {
		return db.pathErr
	}
	if !isMemory(db.path) {
		if err := os.MkdirAll(filepath.Dir(db.path), dirPermissions); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	dsn := buildDSN(db.path, db.timeout)
	db.logger.Debug("opening database", "dsn", dsn)

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}

	// one connection: statements commit in order and an in-memory database
	// lives as long as the handle
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return err
	}

	db.conn = conn
	db.metrics.setConnected(true)
	return nil
}

// Query executes statement and returns every row it produced.
//
// The handle connects first if needed. Each statement runs in auto-commit
// mode, so writes are durable when Query returns. Rows are decoded into
// column-name maps; a statement that returns nothing yields an empty Rows.
// An empty statement is a no-op.
//
// Engine errors are returned as the driver reported them; use
// IsIntegrityViolation and IsOperationalFailure to tell them apart.
func (db *DB) Query(ctx context.Context, statement string, args ...any) (Rows, error) {
	if strings.TrimSpace(statement) == "" {
		return Rows{}, nil
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	start := time.Now()
	rows, err := db.query(ctx, statement, args...)
	db.metrics.observeQuery(start, err)
	return rows, err
}

// query must be called with db.mu held.
func (db *DB) query(ctx context.Context, statement string, args ...any) (Rows, error) {
	if err := db.connect(ctx); err != nil {
		return nil, err
	}

	rs, err := db.conn.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	rows, err := scanRows(rs)
	if err != nil {
		return nil, err
	}
	// closing the cursor completes the statement and its implicit transaction
	if err := rs.Close(); err != nil {
		return nil, err
	}
	return rows, nil
}

// HealthCheck verifies the database is accessible by running a trivial query.
func (db *DB) HealthCheck(ctx context.Context) error {
	rows, err := db.Query(ctx, "SELECT 1 AS ok")
	if err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	if _, err := rows.One(); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

// Close releases the connection. The next Query reconnects.
// Closing an unconnected or nil handle does nothing.
func (db *DB) Close() error {
	if db == nil {
		return nil
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.conn == nil {
		return nil
	}
	err := db.conn.Close()
	db.conn = nil
	db.metrics.setConnected(false)
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
