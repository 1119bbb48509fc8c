// Command pms runs the project management API and its maintenance tasks.
package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/project-manager/internal/config"
	"github.com/deppfellow/project-manager/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pms",
		Short:         "Project, employee and task management service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newTasksCmd())
	return root
}

// app holds what every subcommand loads first.
type app struct {
	cfg           *config.Config
	log           zerolog.Logger
	loggerService *logger.LoggerService
}

func loadApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)

	return &app{
		cfg:           cfg,
		log:           logger.NewLoggerWithService(cfg.Observability, loggerService),
		loggerService: loggerService,
	}, nil
}
