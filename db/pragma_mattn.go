// Copyright (c) 2026 Michael D Henderson. All rights reserved.

//go:build mattn

package db

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// driverName is the database/sql name registered by github.com/mattn/go-sqlite3.
const driverName = "sqlite3"

// pragma represents a SQLite pragma setting.
type pragma struct {
	name  string
	value string
}

// memoryPragmas are used for in-memory databases.
var memoryPragmas = []pragma{
	{name: "_foreign_keys", value: "1"},
	{name: "_journal_mode", value: "MEMORY"},
	{name: "_synchronous", value: "OFF"},
}

// persistentPragmas are used for the on-disk cache file.
var persistentPragmas = []pragma{
	{name: "_foreign_keys", value: "1"},
	{name: "_journal_mode", value: "WAL"},
	{name: "_synchronous", value: "NORMAL"},
}

// busyTimeout returns the pragma that bounds how long a connection waits on a lock.
func busyTimeout(timeout time.Duration) pragma {
	return pragma{name: "_busy_timeout", value: fmt.Sprint(timeout.Milliseconds())}
}

// buildDSN constructs a DSN for github.com/mattn/go-sqlite3.
// mattn uses the syntax: file:path?_foreign_keys=1&_journal_mode=WAL
func buildDSN(path string, timeout time.Duration) string {
	var sb strings.Builder

	pragmas := persistentPragmas
	if isMemory(path) {
		sb.WriteString("file::memory:")
		pragmas = memoryPragmas
	} else {
		sb.WriteString("file:")
		sb.WriteString(uriPath(path))
	}

	pragmas = append([]pragma{busyTimeout(timeout)}, pragmas...)
	for i, p := range pragmas {
		if i > 0 {
			sb.WriteString("&")
		} else {
			sb.WriteString("?")
		}
		fmt.Fprintf(&sb, "%s=%s", p.name, p.value)
	}

	return sb.String()
}
