// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Cache stores API response bodies between runs in the tabResponseCache
// table created by the bootstrap script.
type Cache struct {
	db  *DB
	now func() time.Time
}

// NewCache returns a response cache backed by db.
func NewCache(db *DB) *Cache {
	return &Cache{db: db, now: time.Now}
}

// Put stores body under key, replacing any previous body.
func (c *Cache) Put(ctx context.Context, key, body string) error {
	_, err := c.db.Query(ctx, `
		INSERT INTO tabResponseCache (key, body, created_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET body = excluded.body, created_at = excluded.created_at
	`, key, body, c.now().UTC().Unix())
	if err != nil {
		return fmt.Errorf("cache put %q: %w", key, err)
	}
	return nil
}

// Get returns the body stored under key. ok is false if there is none.
func (c *Cache) Get(ctx context.Context, key string) (body string, ok bool, err error) {
	rows, err := c.db.Query(ctx, `SELECT body FROM tabResponseCache WHERE key = ?`, key)
	if err != nil {
		return "", false, fmt.Errorf("cache get %q: %w", key, err)
	}
	row, err := rows.One()
	if errors.Is(err, ErrNotOne) && rows.Len() == 0 {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("cache get %q: %w", key, err)
	}

	switch v := row["body"].(type) {
	case string:
		return v, true, nil
	case []byte:
		return string(v), true, nil
	default:
		return "", false, fmt.Errorf("cache get %q: unexpected body type %T", key, v)
	}
}

// Delete removes key. Deleting a missing key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.Query(ctx, `DELETE FROM tabResponseCache WHERE key = ?`, key); err != nil {
		return fmt.Errorf("cache delete %q: %w", key, err)
	}
	return nil
}

// Purge removes every cached response.
func (c *Cache) Purge(ctx context.Context) error {
	if _, err := c.db.Query(ctx, `DELETE FROM tabResponseCache`); err != nil {
		return fmt.Errorf("cache purge: %w", err)
	}
	return nil
}

// PurgeBefore removes responses cached before t and returns how many were removed.
func (c *Cache) PurgeBefore(ctx context.Context, t time.Time) (int, error) {
	rows, err := c.db.Query(ctx, `DELETE FROM tabResponseCache WHERE created_at < ? RETURNING key`, t.UTC().Unix())
	if err != nil {
		return 0, fmt.Errorf("cache purge: %w", err)
	}
	return rows.Len(), nil
}

// Len returns the number of cached responses.
func (c *Cache) Len(ctx context.Context) (int, error) {
	rows, err := c.db.Query(ctx, `SELECT COUNT(*) AS n FROM tabResponseCache`)
	if err != nil {
		return 0, fmt.Errorf("cache len: %w", err)
	}
	row, err := rows.One()
	if err != nil {
		return 0, fmt.Errorf("cache len: %w", err)
	}
	n, ok := row["n"].(int64)
	if !ok {
		return 0, fmt.Errorf("cache len: unexpected count type %T", row["n"])
	}
	return int(n), nil
}
