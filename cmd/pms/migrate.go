package main

import (
	"github.com/deppfellow/project-manager/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.loggerService.Shutdown()

			return database.Migrate(cmd.Context(), &a.log, a.cfg)
		},
	}
}
