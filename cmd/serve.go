package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AnthonyHerman/cvefeed/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve /api/cves and the frontend",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}

	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().String("frontend", "", "Directory holding the frontend (overrides FRONTEND_DIR)")

	return serveCmd
}

func (a *app) runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		port, _ := cmd.Flags().GetInt("port")
		a.cfg.Server.Port = port
		if err := a.cfg.Validate(); err != nil {
			return err
		}
	}
	if f := cmd.Flags().Lookup("frontend"); f != nil && f.Changed {
		a.cfg.Server.FrontendDir, _ = cmd.Flags().GetString("frontend")
	}

	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	a.log.Infow("Connected to database",
		"host", a.cfg.Database.Host,
		"database", a.cfg.Database.Name,
		"table", db.Table(),
	)

	return server.New(db, a.log, a.cfg.Server).Run(ctx)
}
