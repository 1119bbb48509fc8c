package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/project-manager/internal/config"
	"github.com/deppfellow/project-manager/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type fakeMailer struct {
	to   string
	sent []email.TaskAssigned
	err  error
}

func (f *fakeMailer) SendTaskAssignedEmail(to string, t email.TaskAssigned) error {
	f.to = to
	f.sent = append(f.sent, t)
	return f.err
}

type fakeClient struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeClient) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "job-1", Queue: QueueCritical, Type: task.Type()}, nil
}

func (f *fakeClient) Close() error { return nil }

func newTestService(m taskMailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger, mailer: m, recipient: "pm@example.com"}
}

func TestNewTaskAssignedTask(t *testing.T) {
	task, err := NewTaskAssignedTask(TaskAssignedPayload{TaskID: 9, EmployeeID: 2, ProjectID: 1, Description: "ship"})
	if err != nil {
		t.Fatalf("NewTaskAssignedTask error: %v", err)
	}

	if task.Type() != TaskAssigned {
		t.Errorf("Type() = %q, want %q", task.Type(), TaskAssigned)
	}

	var got TaskAssignedPayload
	if err := json.Unmarshal(task.Payload(), &got); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if got.TaskID != 9 || got.EmployeeID != 2 || got.Description != "ship" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestHandleTaskAssignedTask(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestService(mailer)

	task, _ := NewTaskAssignedTask(TaskAssignedPayload{TaskID: 4, EmployeeID: 3, ProjectID: 1, Status: "assigned"})
	if err := svc.handleTaskAssignedTask(context.Background(), task); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(mailer.sent))
	}
	if mailer.to != "pm@example.com" {
		t.Errorf("recipient = %q", mailer.to)
	}
	if mailer.sent[0].TaskID != 4 || mailer.sent[0].Status != "assigned" {
		t.Errorf("unexpected email data: %+v", mailer.sent[0])
	}
}

func TestHandleTaskAssignedTask_MailerError(t *testing.T) {
	boom := errors.New("resend down")
	svc := newTestService(&fakeMailer{err: boom})

	task, _ := NewTaskAssignedTask(TaskAssignedPayload{TaskID: 1})
	if err := svc.handleTaskAssignedTask(context.Background(), task); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
}

func TestHandleTaskAssignedTask_BadPayloadSkipsRetry(t *testing.T) {
	svc := newTestService(&fakeMailer{})

	err := svc.handleTaskAssignedTask(context.Background(), asynq.NewTask(TaskAssigned, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("error = %v, want SkipRetry", err)
	}
}

func TestHandleTaskAssignedTask_NoMailer(t *testing.T) {
	svc := newTestService(nil)

	task, _ := NewTaskAssignedTask(TaskAssignedPayload{TaskID: 1})
	if err := svc.handleTaskAssignedTask(context.Background(), task); err != nil {
		t.Fatalf("handler without mailer should drop the job, got %v", err)
	}
}

func TestEnqueueTaskAssigned(t *testing.T) {
	client := &fakeClient{}
	svc := newTestService(nil)
	svc.Client = client

	if err := svc.EnqueueTaskAssigned(context.Background(), TaskAssignedPayload{TaskID: 5}); err != nil {
		t.Fatalf("EnqueueTaskAssigned error: %v", err)
	}
	if len(client.tasks) != 1 || client.tasks[0].Type() != TaskAssigned {
		t.Fatalf("unexpected enqueued tasks: %v", client.tasks)
	}

	client.err = errors.New("redis unavailable")
	if err := svc.EnqueueTaskAssigned(context.Background(), TaskAssignedPayload{TaskID: 6}); !errors.Is(err, client.err) {
		t.Fatalf("error = %v, want wrapped enqueue error", err)
	}
}

func TestInitHandlers(t *testing.T) {
	logger := zerolog.Nop()

	svc := &JobService{logger: &logger}
	svc.InitHandlers(&config.Config{}, &logger)
	if svc.mailer != nil {
		t.Error("mailer should stay nil without integration config")
	}

	svc.InitHandlers(&config.Config{Integration: config.IntegrationConfig{
		ResendAPIKey:      "re_123",
		NotificationEmail: "pm@example.com",
	}}, &logger)
	if svc.mailer == nil || svc.recipient != "pm@example.com" {
		t.Error("mailer should be configured when integration config is set")
	}
}
