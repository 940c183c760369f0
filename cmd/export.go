package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AnthonyHerman/cvefeed/internal/cve"
	"github.com/AnthonyHerman/cvefeed/internal/report"
)

func newExportCmd(a *app) *cobra.Command {
	var dir string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write the normalized cve rows to an excel workbook",
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

			path, err := report.ExportWorkbook(dir, cve.NormalizeAll(rows), time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n %s %s\n", color.GreenString("Your file has been saved to:"), path)
			return nil
		},
	}

	exportCmd.Flags().StringVarP(&dir, "dir", "d", "./export", "Directory the workbook is written to")

	return exportCmd
}
