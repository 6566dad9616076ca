// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package db provides the local SQLite cache used by the Cell Collective
// client to keep API responses between runs.
//
// The package is built around three pieces:
//   - DB, a handle owning one connection to the cache file
//   - Connector, which creates the shared handle once and bootstraps it
//   - Bootstrap, which runs the bundled bootstrap.sql script
//
// # Basic Usage
//
//	conn := db.NewConnector(db.Config{})   // ~/.ccapi/db.db
//	handle, err := conn.Get(ctx)
//	if err != nil {
//	    return err
//	}
//	rows, err := handle.Query(ctx, "SELECT key FROM tabResponseCache")
//
// GetConnection offers the same behavior through a process-wide connector
// for callers that do not carry a Connector around.
//
// # Query Results
//
// Query always returns Rows, a slice of column-name maps. Use Rows.One when
// exactly one row is expected; Rows.Collapse returns the older shape where a
// single row is returned bare.
//
// # Bootstrap Scripts
//
// The script is split on every ";" with no awareness of string literals or
// trigger bodies, so script authors must not use ";" inside a statement.
// Empty statements, including the one after a trailing ";", and statements
// holding only "--" comment lines are skipped. Other statements run as written.
// Statements run one at a time in auto-commit mode; a failure stops the run
// and leaves earlier statements committed.
//
// # Errors
//
// Engine errors are passed through from the driver. IsIntegrityViolation
// reports constraint failures; IsOperationalFailure reports lock, I/O and
// other engine failures. Nothing is retried.
//
// # Driver Support
//
// This package supports two SQLite drivers via build tags:
//   - modernc.org/sqlite (default, pure Go, no CGO)
//   - github.com/mattn/go-sqlite3 (CGO, use -tags mattn)
//
// # Configuration
//
// Config can be built directly, from the environment with ConfigFromEnv,
// or from a YAML file with LoadConfig. Environment variables:
//   - CCAPI_DB_PATH: database file path
//   - CCAPI_DB_TIMEOUT: lock timeout, "10s" or whole seconds
//   - CCAPI_SKIP_BOOTSTRAP: "true" to skip the bootstrap script
package db
