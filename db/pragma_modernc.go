// Copyright (c) 2026 Michael D Henderson. All rights reserved.

//go:build !mattn

package db

import (
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// driverName is the database/sql name registered by modernc.org/sqlite.
const driverName = "sqlite"

// pragma represents a SQLite pragma setting.
type pragma struct {
	name  string
	value string
}

// memoryPragmas are used for in-memory databases.
var memoryPragmas = []pragma{
	{name: "foreign_keys", value: "ON"},
	{name: "journal_mode", value: "MEMORY"},
	{name: "synchronous", value: "OFF"},
	{name: "temp_store", value: "MEMORY"},
}

// persistentPragmas are used for the on-disk cache file.
var persistentPragmas = []pragma{
	{name: "foreign_keys", value: "ON"},
	{name: "journal_mode", value: "WAL"},
	{name: "synchronous", value: "NORMAL"},
	{name: "temp_store", value: "FILE"},
}

// busyTimeout returns the pragma that bounds how long a connection waits on a lock.
func busyTimeout(timeout time.Duration) pragma {
	return pragma{name: "busy_timeout", value: fmt.Sprint(timeout.Milliseconds())}
}

// buildDSN constructs a DSN for modernc.org/sqlite.
// modernc uses the syntax: file:path?_pragma=name(value)&_pragma=name2(value2)
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
		fmt.Fprintf(&sb, "_pragma=%s(%s)", p.name, p.value)
	}

	return sb.String()
}
