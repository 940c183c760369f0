package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/AnthonyHerman/cvefeed/internal/cve"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
	)
}

// WriteColumns prints the table's columns with their ordinal position.
func WriteColumns(w io.Writer, columns []string) {
	table := newTable(w)
	table.Header([]string{"#", "Column"})
	for i, column := range columns {
		table.Append([]string{strconv.Itoa(i + 1), column})
	}
	table.Render()
}

// WriteSummary prints one line per row with the commonly used fields.
func WriteSummary(w io.Writer, rows []cve.NormalizedRow) {
	table := newTable(w)
	table.Header(SummaryHeaders)
	for _, row := range rows {
		table.Append(summary(row))
	}
	table.Render()
}
