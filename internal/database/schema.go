package database

import (
	"context"
	"fmt"
)

const listColumnsQuery = `
	SELECT column_name
	FROM information_schema.columns
	WHERE table_schema = $1 AND table_name = $2
	ORDER BY ordinal_position
`

// ListColumns returns the column names of the table in ordinal order.
// A table that does not exist yields an empty list, not an error.
func (db *DB) ListColumns(ctx context.Context) ([]string, error) {
	columns := []string{}
	if err := db.SelectContext(ctx, &columns, listColumnsQuery, db.schema, db.table); err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", db.Table(), err)
	}
	return columns, nil
}
