// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mdhender/ccapi/db"
)

func TestClassify(t *testing.T) {
	if got := db.Classify(nil); got != db.KindNone {
		t.Errorf("Classify(nil) = %s, want none", got)
	}
	if got := db.Classify(errors.New("boom")); got != db.KindOther {
		t.Errorf("Classify(plain error) = %s, want other", got)
	}
	if db.IsIntegrityViolation(nil) || db.IsOperationalFailure(nil) {
		t.Error("nil is neither an integrity violation nor an operational failure")
	}
}

// TestClassify_Wrapped tests that classification sees through wrapping.
func TestClassify_Wrapped(t *testing.T) {
	ctx := context.Background()
	handle := newTestDB(t)

	if _, err := handle.Query(ctx, "CREATE TABLE t (id INTEGER NOT NULL)"); err != nil {
		t.Fatalf("CREATE failed: %v", err)
	}
	_, err := handle.Query(ctx, "INSERT INTO t VALUES (NULL)")
	if err == nil {
		t.Fatal("expected not null violation")
	}

	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", err))
	if got := db.Classify(wrapped); got != db.KindIntegrity {
		t.Errorf("Classify(wrapped) = %s, want integrity", got)
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := map[db.ErrorKind]string{
		db.KindNone:        "none",
		db.KindIntegrity:   "integrity",
		db.KindOperational: "operational",
		db.KindOther:       "other",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
