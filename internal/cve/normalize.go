// Package cve reshapes rows of the cve table so that consumers can read a
// field under any of the names it has historically been published as.
package cve

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Row is one record of the cve table. Columns keeps the order the driver
// returned them in and Values is aligned with it.
type Row struct {
	Columns []string
	Values  []any
}

// value returns the value of column i, or nil when Values is shorter than
// Columns.
func (r Row) value(i int) any {
	if i < len(r.Values) {
		return r.Values[i]
	}
	return nil
}

// NewRow builds a Row from parallel column and value slices.
func NewRow(columns []string, values []any) (Row, error) {
	if len(columns) != len(values) {
		return Row{}, fmt.Errorf("row has %d columns but %d values", len(columns), len(values))
	}
	return Row{Columns: columns, Values: values}, nil
}

// aliasGroup maps a set of source columns onto the keys written for them.
// Sources are listed in precedence order.
type aliasGroup struct {
	sources []string
	aliases []string
}

var aliasGroups = []aliasGroup{
	{
		sources: []string{"cve", "cve_id"},
		aliases: []string{"cve", "CVE"},
	},
	{
		sources: []string{"vendor"},
		aliases: []string{"vendor"},
	},
	{
		sources: []string{"products", "product"},
		aliases: []string{"products", "product"},
	},
	{
		sources: []string{"description"},
		aliases: []string{"description"},
	},
	{
		sources: []string{"base_score", "cvss_score"},
		aliases: []string{"base_score", "Base_Score", "cvss_score"},
	},
	{
		sources: []string{"base_severity", "severity", "cvss_severity"},
		aliases: []string{"base_severity", "Base_Severity", "severity"},
	},
	{
		sources: []string{"published_date", "published", "date", "created_at"},
		aliases: []string{"published_date", "Published_Date", "published"},
	},
}

// source returns the index of the column feeding this group, or -1.
// The highest-precedence source wins; between columns with the same
// lowercased name the later one wins.
func (g aliasGroup) source(columns []string) int {
	best, bestRank := -1, len(g.sources)
	for i, column := range columns {
		lower := strings.ToLower(column)
		for rank, src := range g.sources {
			if lower == src && rank <= bestRank {
				best, bestRank = i, rank
				break
			}
		}
	}
	return best
}

// NormalizedRow holds every key of the Row it was built from plus the
// alias keys. Keys serialize in insertion order.
type NormalizedRow struct {
	keys   []string
	values map[string]any
}

func newNormalizedRow(size int) NormalizedRow {
	return NormalizedRow{
		keys:   make([]string, 0, size),
		values: make(map[string]any, size),
	}
}

func (n *NormalizedRow) set(key string, value any) {
	if _, ok := n.values[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.values[key] = value
}

// Get returns the value stored under key.
func (n NormalizedRow) Get(key string) (any, bool) {
	v, ok := n.values[key]
	return v, ok
}

// Keys returns the keys in serialization order.
func (n NormalizedRow) Keys() []string {
	return append([]string(nil), n.keys...)
}

func (n NormalizedRow) Len() int {
	return len(n.keys)
}

func (n NormalizedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(jsonValue(n.values[key]))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %s: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// jsonValue maps NaN and infinities, which JSON cannot represent, to null.
func jsonValue(v any) any {
	switch f := v.(type) {
	case float64:
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
	case float32:
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return nil
		}
	}
	return v
}

// Normalize copies row and adds the alias keys of every group that has a
// source column present. It never removes a key.
func Normalize(row Row) NormalizedRow {
	n := newNormalizedRow(len(row.Columns) + 8)
	for i, column := range row.Columns {
		n.set(column, row.value(i))
	}

	for _, group := range aliasGroups {
		idx := group.source(row.Columns)
		if idx < 0 {
			continue
		}
		for _, alias := range group.aliases {
			n.set(alias, row.value(idx))
		}
	}

	return n
}

// NormalizeAll normalizes rows in order. The result is never nil so an
// empty table encodes as [].
func NormalizeAll(rows []Row) []NormalizedRow {
	out := make([]NormalizedRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, Normalize(row))
	}
	return out
}
