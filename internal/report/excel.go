package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/AnthonyHerman/cvefeed/internal/cve"
)

const SheetName = "CVEs"

// ExportWorkbook writes rows to a new workbook in dir and returns its path.
// Every key of every row becomes a column.
func ExportWorkbook(dir string, rows []cve.NormalizedRow, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating directory %s, %w", dir, err)
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SheetName); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	columns := Columns(rows)
	for i, header := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := file.SetCellValue(SheetName, cell, header); err != nil {
			return "", fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	for i, row := range rows {
		rowData := make([]interface{}, len(columns))
		for j, column := range columns {
			v, _ := row.Get(column)
			rowData[j] = cellValue(v)
		}

		// excel is 1 indexed and row 1 holds the headers
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(SheetName, cell, &rowData); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	fileName := fmt.Sprintf("cves_%s.xlsx", now.Format("2006-01-02T15-04-05"))
	fullPath := filepath.Join(dir, fileName)

	if err := file.SaveAs(fullPath); err != nil {
		return "", fmt.Errorf("failed to save excel to %s, %w", fullPath, err)
	}

	return fullPath, nil
}

// cellValue keeps numbers numeric and renders everything else as text.
func cellValue(v any) any {
	switch v.(type) {
	case int, int32, int64, float32, float64, bool:
		return v
	default:
		return FormatValue(v)
	}
}
