package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AnthonyHerman/cvefeed/internal/report"
)

func newColumnsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "list the columns currently defined on the cve table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			columns, err := db.ListColumns(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(columns) == 0 {
				fmt.Fprint(out, color.YellowString("\n No columns found for %s, does the table exist?\n", db.Table()))
				return nil
			}

			fmt.Fprintf(out, "\n Columns of %s: \n", color.CyanString(db.Table()))
			report.WriteColumns(out, columns)
			return nil
		},
	}
}
