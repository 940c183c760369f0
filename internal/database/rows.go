package database

import (
	"context"
	"fmt"
	"math"

	"github.com/lib/pq"

	"github.com/AnthonyHerman/cvefeed/internal/cve"
)

// FetchRows reads every record of the table in the order the server
// returns them.
func (db *DB) FetchRows(ctx context.Context) ([]cve.Row, error) {
	query := fmt.Sprintf("SELECT * FROM %s.%s", pq.QuoteIdentifier(db.schema), pq.QuoteIdentifier(db.table))

	rows, err := db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", db.Table(), err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", db.Table(), err)
	}

	result := []cve.Row{}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row %d of %s: %w", len(result)+1, db.Table(), err)
		}
		for i, v := range values {
			values[i] = scalar(v)
		}

		row, err := cve.NewRow(columns, values)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while reading %s: %w", db.Table(), err)
	}

	return result, nil
}

// scalar converts driver byte slices (numeric, json, unknown types) to
// their text form so they serialize as strings rather than base64.
// NaN and infinite floats become nil.
func scalar(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
	}
	return v
}
