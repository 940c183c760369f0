package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AnthonyHerman/cvefeed/internal/cve"
	"github.com/AnthonyHerman/cvefeed/internal/report"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "print the normalized cve rows as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			rows, err := db.FetchRows(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprint(out, color.GreenString("\n No CVEs in %s\n", db.Table()))
				return nil
			}

			fmt.Fprintf(out, "\n Found %d CVEs: \n", len(rows))
			report.WriteSummary(out, cve.NormalizeAll(rows))
			return nil
		},
	}
}
