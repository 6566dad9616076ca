// Copyright (c) 2026 Michael D Henderson. All rights reserved.

//go:build mattn

package db

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// driverKind maps a github.com/mattn/go-sqlite3 error to an ErrorKind.
func driverKind(err error) (ErrorKind, bool) {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return KindOther, false
	}
	switch se.Code {
	case sqlite3.ErrConstraint:
		return KindIntegrity, true
	case sqlite3.ErrError,
		sqlite3.ErrPerm,
		sqlite3.ErrAbort,
		sqlite3.ErrBusy,
		sqlite3.ErrLocked,
		sqlite3.ErrNomem,
		sqlite3.ErrReadonly,
		sqlite3.ErrInterrupt,
		sqlite3.ErrIoErr,
		sqlite3.ErrCorrupt,
		sqlite3.ErrFull,
		sqlite3.ErrCantOpen,
		sqlite3.ErrProtocol,
		sqlite3.ErrNotADB:
		return KindOperational, true
	}
	return KindOther, true
}
