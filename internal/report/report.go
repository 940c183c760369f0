// Package report renders normalized CVE rows for people: as a terminal
// table or as a spreadsheet.
package report

import (
	"fmt"
	"time"

	"github.com/AnthonyHerman/cvefeed/internal/cve"
)

// SummaryHeaders are the columns shown by the terminal listing, each read
// from the alias key at the same index of summaryKeys.
var SummaryHeaders = []string{"CVE", "Vendor", "Product", "Base Score", "Severity", "Published"}

var summaryKeys = []string{"cve", "vendor", "product", "base_score", "base_severity", "published_date"}

// FormatValue renders a column value as display text.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.Format("2006-01-02")
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// Columns returns every key across rows in order of first appearance.
func Columns(rows []cve.NormalizedRow) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range rows {
		for _, key := range row.Keys() {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	return columns
}

func summary(row cve.NormalizedRow) []string {
	out := make([]string, len(summaryKeys))
	for i, key := range summaryKeys {
		v, _ := row.Get(key)
		out[i] = FormatValue(v)
	}
	return out
}
