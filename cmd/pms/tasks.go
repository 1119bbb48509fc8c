package main

import (
	"errors"
	"os"

	"github.com/deppfellow/project-manager/internal/database"
	"github.com/deppfellow/project-manager/internal/lib/utils"
	"github.com/deppfellow/project-manager/internal/repository"
	"github.com/spf13/cobra"
)

// newTasksCmd prints the tasks of one employee within one project as
// indented JSON.
func newTasksCmd() *cobra.Command {
	var employeeID, projectID int64

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Print the tasks assigned to an employee within a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if employeeID < 1 || projectID < 1 {
				return errors.New("--employee and --project must be positive ids")
			}

			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.loggerService.Shutdown()

			db, err := database.New(a.cfg, &a.log, a.loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := repository.NewProjectRepository(db.Pool, &a.log)

			tasks, err := repo.GetAllTasks(cmd.Context(), employeeID, projectID)
			if err != nil {
				return err
			}

			return utils.PrintJSON(os.Stdout, tasks)
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "employee id")
	cmd.Flags().Int64Var(&projectID, "project", 0, "project id")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
