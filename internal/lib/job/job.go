// Package job provides background job processing using Asynq.
//
// Tasks are enqueued through JobService.Client and processed by the
// worker server started with Start. Both use Redis.
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/project-manager/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// enqueuer is the subset of *asynq.Client used to push tasks.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client enqueuer
	server *asynq.Server
	logger *zerolog.Logger

	mailer    taskMailer
	recipient string
}

// NewJobService creates a JobService configured to use Redis from cfg.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers task handlers and starts the worker server.
// It does not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskAssigned, j.handleTaskAssignedTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return fmt.Errorf("starting job server: %w", err)
	}

	return nil
}

// Stop shuts the worker server down and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	if j.server != nil {
		j.server.Shutdown()
	}
	if err := j.Client.Close(); err != nil {
		j.logger.Warn().Err(err).Msg("failed to close job client")
	}
}
