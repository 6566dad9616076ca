// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db

import (
	"database/sql"
	"time"
)

// Underlying exposes the handle's *sql.DB to tests.
func Underlying(db *DB) *sql.DB {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.conn
}

// SetCacheClock replaces the clock used for created_at.
func SetCacheClock(c *Cache, now func() time.Time) {
	c.now = now
}

// ResetProcessConnection closes and forgets the process-wide connector.
func ResetProcessConnection() error {
	processMu.Lock()
	defer processMu.Unlock()
	if processConnector == nil {
		return nil
	}
	err := processConnector.Close()
	processConnector = nil
	return err
}
