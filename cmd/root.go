package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AnthonyHerman/cvefeed/internal/config"
	"github.com/AnthonyHerman/cvefeed/internal/database"
	"github.com/AnthonyHerman/cvefeed/internal/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *zap.SugaredLogger

	connect func(ctx context.Context, cfg config.DatabaseConfig) (*database.DB, error)
}

func (a *app) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	return nil
}

func (a *app) openDB(ctx context.Context) (*database.DB, error) {
	db, err := a.connect(ctx, a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	return db, nil
}

// NewRootCmd builds the cvefeed command tree. Running it without a
// subcommand serves the API.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{connect: database.New})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cvefeed",
		Short: "serve the cve table as normalized JSON",
		Long: `cvefeed reads the cve table of a PostgreSQL database and serves it at
/api/cves, adding aliased field names so that every consumer finds the
identifier, score, severity and publication date under the name it expects.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
		RunE: a.runServe,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newServeCmd(a),
		newColumnsCmd(a),
		newListCmd(a),
		newExportCmd(a),
	)

	return rootCmd
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}
