// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db

import (
	"context"
	"fmt"
	"sync"
)

// Connector owns the one shared DB handle for its configuration.
//
// The first successful Get creates the handle: it ensures the database
// directory exists, connects, and runs the bootstrap script unless
// Config.SkipBootstrap is set. Later calls return the same handle without
// bootstrapping again. If any step fails, the connector stays uninitialized
// and the next Get starts over.
type Connector struct {
	cfg Config

	mu sync.Mutex
	db *DB
}

// NewConnector returns an uninitialized connector for cfg.
func NewConnector(cfg Config) *Connector {
	return &Connector{cfg: cfg.defaults()}
}

// Ready returns true once Get has created the shared handle.
func (c *Connector) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db != nil
}

// Get returns the shared handle, creating and bootstrapping it on first use.
func (c *Connector) Get(ctx context.Context) (*DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	c.db = db
	return db, nil
}

// open runs the construct-connect-bootstrap sequence.
func (c *Connector) open(ctx context.Context) (*DB, error) {
	cfg := c.cfg
	cfg.Logger.Info("establishing database connection")

	db := New(cfg)
	path := db.Path()

	// Ensure cleanup on error
	success := false
	defer func() {
		if !success {
			_ = db.Close()
		}
	}()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect %s: %w", path, err)
	}

	if !cfg.SkipBootstrap {
		cfg.Logger.Info("bootstrapping database", "path", path)
		if err := Bootstrap(ctx, db, cfg.BootstrapFS); err != nil {
			return nil, err
		}
	}

	success = true
	return db, nil
}

// Close closes the shared handle and returns the connector to its
// uninitialized state. The next Get creates a new handle.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Reset closes the shared handle and deletes the database file, discarding
// every cached response. The next Get creates and bootstraps a new file.
// An in-memory database is only closed.
func (c *Connector) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	path, err := c.cfg.resolvePath()
	if err != nil {
		return err
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return err
		}
		c.db = nil
	}
	if isMemory(path) {
		return nil
	}

	c.cfg.Logger.Info("deleting database", "path", path)
	return Delete(path)
}

var (
	processMu        sync.Mutex
	processConnector *Connector
)

// GetConnection returns the process-wide handle at DefaultPath (or $CCAPI_DB_PATH).
//
// The first call creates the handle and, if bootstrap is true, runs the
// embedded bootstrap script. The bootstrap argument is ignored once the
// handle exists. Libraries should prefer an explicit Connector.
func GetConnection(ctx context.Context, bootstrap bool) (*DB, error) {
	processMu.Lock()
	defer processMu.Unlock()

	if processConnector == nil || !processConnector.Ready() {
		cfg, err := ConfigFromEnv()
		if err != nil {
			return nil, err
		}
		cfg.SkipBootstrap = cfg.SkipBootstrap || !bootstrap
		processConnector = NewConnector(cfg)
	}
	return processConnector.Get(ctx)
}
