package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/project-manager/internal/config"
	"github.com/deppfellow/project-manager/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type taskMailer interface {
	SendTaskAssignedEmail(to string, t email.TaskAssigned) error
}

// InitHandlers prepares handler dependencies. Notification emails are
// only sent when the Resend key and recipient are both configured.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Integration.NotificationsEnabled() {
		logger.Info().Msg("task notification emails disabled")
		return
	}

	j.mailer = email.NewClient(cfg, logger)
	j.recipient = cfg.Integration.NotificationEmail
}

func (j *JobService) handleTaskAssignedTask(ctx context.Context, t *asynq.Task) error {
	var p TaskAssignedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal task assigned payload: %w: %w", err, asynq.SkipRetry)
	}

	if j.mailer == nil {
		j.logger.Debug().Int64("task_id", p.TaskID).Msg("no mailer configured, dropping task assigned job")
		return nil
	}

	j.logger.Info().
		Str("type", TaskAssigned).
		Int64("task_id", p.TaskID).
		Int64("employee_id", p.EmployeeID).
		Msg("Processing task assigned notification")

	err := j.mailer.SendTaskAssignedEmail(j.recipient, email.TaskAssigned{
		TaskID:       p.TaskID,
		EmployeeID:   p.EmployeeID,
		ProjectID:    p.ProjectID,
		Description:  p.Description,
		Status:       p.Status,
		DeadlineDate: p.DeadlineDate,
	})
	if err != nil {
		j.logger.Error().
			Str("type", TaskAssigned).
			Int64("task_id", p.TaskID).
			Err(err).
			Msg("Failed to send task assigned email")
		return err
	}

	j.logger.Info().
		Str("type", TaskAssigned).
		Int64("task_id", p.TaskID).
		Msg("Successfully sent task assigned email")

	return nil
}
