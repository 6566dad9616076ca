// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

// BootstrapFile is the name of the bootstrap script inside a bootstrap filesystem.
const BootstrapFile = "bootstrap.sql"

//go:embed bootstrap.sql
var bootstrapFS embed.FS

// SplitStatements splits script on every ";" and trims whitespace from each piece.
//
// Order is preserved and nothing is dropped: a trailing ";" yields a trailing
// empty string. The split does not understand SQL, so a ";" inside a string
// literal or a trigger body splits that statement.
func SplitStatements(script string) []string {
	pieces := strings.Split(script, ";")
	statements := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		statements = append(statements, strings.TrimSpace(piece))
	}
	return statements
}

// Bootstrap reads bootstrap.sql from fsys and executes its statements against db in order.
// A nil fsys uses the script embedded in this package.
//
// Empty statements and statements holding only "--" comments are skipped;
// every other statement runs exactly as written. The first failing statement stops the run;
// statements before it stay committed.
func Bootstrap(ctx context.Context, db *DB, fsys fs.FS) (err error) {
	defer func() {
		db.metrics.observeBootstrap(err)
	}()

	if fsys == nil {
		fsys = bootstrapFS
	}
	script, err := fs.ReadFile(fsys, BootstrapFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", BootstrapFile, err)
	}

	for i, statement := range SplitStatements(string(script)) {
		if commentOnly(statement) {
			db.logger.Debug("skipping empty bootstrap statement", "index", i)
			continue
		}
		db.logger.Debug("bootstrap statement", "index", i)
		if _, err := db.Query(ctx, statement); err != nil {
			return fmt.Errorf("bootstrap statement %d: %w", i, err)
		}
		db.metrics.bootstrapStatement()
	}

	return nil
}

// commentOnly returns true if every non-blank line of statement is a "--" comment.
// An empty statement is comment-only.
func commentOnly(statement string) bool {
	for _, line := range strings.Split(statement, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "--") {
			return false
		}
	}
	return true
}
