// Copyright (c) 2026 Michael D Henderson. All rights reserved.

//go:build !mattn

package db

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// driverKind maps a modernc.org/sqlite error to an ErrorKind.
// Extended result codes carry the primary code in the low byte.
func driverKind(err error) (ErrorKind, bool) {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return KindOther, false
	}
	switch se.Code() & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		return KindIntegrity, true
	case sqlite3.SQLITE_ERROR,
		sqlite3.SQLITE_PERM,
		sqlite3.SQLITE_ABORT,
		sqlite3.SQLITE_BUSY,
		sqlite3.SQLITE_LOCKED,
		sqlite3.SQLITE_NOMEM,
		sqlite3.SQLITE_READONLY,
		sqlite3.SQLITE_INTERRUPT,
		sqlite3.SQLITE_IOERR,
		sqlite3.SQLITE_CORRUPT,
		sqlite3.SQLITE_FULL,
		sqlite3.SQLITE_CANTOPEN,
		sqlite3.SQLITE_PROTOCOL,
		sqlite3.SQLITE_NOTADB:
		return KindOperational, true
	}
	return KindOther, true
}
