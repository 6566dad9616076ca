// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db

import (
	"errors"
)

// ErrNotOne is returned by Rows.One when a result does not hold exactly one row.
var ErrNotOne = errors.New("result does not contain exactly one row")

// ErrorKind groups engine errors the way callers are expected to handle them.
type ErrorKind int

const (
	// KindNone means there was no error.
	KindNone ErrorKind = iota
	// KindIntegrity is a schema constraint violation (unique, not null, foreign key, check).
	KindIntegrity
	// KindOperational is a connection, lock, timeout, I/O or engine-level failure.
	KindOperational
	// KindOther is any error that did not come from the SQLite engine.
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindIntegrity:
		return "integrity"
	case KindOperational:
		return "operational"
	default:
		return "other"
	}
}

// Classify reports which kind of failure err represents.
// Wrapped errors are unwrapped; the engine's primary result code decides.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	if kind, ok := driverKind(err); ok {
		return kind
	}
	return KindOther
}

// IsIntegrityViolation returns true if err is a constraint violation reported by the engine,
// such as inserting a duplicate primary key.
func IsIntegrityViolation(err error) bool {
	return Classify(err) == KindIntegrity
}

// IsOperationalFailure returns true if err is an engine-level failure,
// such as the database staying locked past the handle's timeout.
func IsOperationalFailure(err error) bool {
	return Classify(err) == KindOperational
}
