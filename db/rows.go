// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db

import (
	"database/sql"
	"fmt"
)

// Row maps column names to the values the driver returned for them.
type Row map[string]any

// Rows is the result of a query, in the order the engine produced it.
// A query that returns nothing yields an empty, non-nil Rows.
type Rows []Row

// Len returns the number of rows.
func (r Rows) Len() int {
	return len(r)
}

// One returns the only row of the result.
// It returns ErrNotOne if the result holds zero rows or more than one.
func (r Rows) One() (Row, error) {
	if len(r) != 1 {
		return nil, fmt.Errorf("%d rows: %w", len(r), ErrNotOne)
	}
	return r[0], nil
}

// Collapse returns the single Row when the result holds exactly one row
// and the Rows otherwise. Callers must switch on the dynamic type.
//
// This mirrors the result shape older clients of the cache expect;
// new code should use One or range over Rows.
func (r Rows) Collapse() any {
	if len(r) == 1 {
		return r[0]
	}
	return r
}

// scanRows reads every row from rs into a Rows. It does not close rs.
func scanRows(rs *sql.Rows) (Rows, error) {
	columns, err := rs.Columns()
	if err != nil {
		return nil, err
	}

	result := Rows{}
	for rs.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, name := range columns {
			row[name] = values[i]
		}
		result = append(result, row)
	}
	return result, rs.Err()
}
