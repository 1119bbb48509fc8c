package email

import (
	"fmt"
	"strconv"
	"time"
)

// TaskAssigned describes a task hand-off for the notification email.
type TaskAssigned struct {
	TaskID       int64
	EmployeeID   int64
	ProjectID    int64
	Description  string
	Status       string
	DeadlineDate *time.Time
}

// templateData flattens t into the keys task_assigned.html expects.
func (t TaskAssigned) templateData() map[string]string {
	data := map[string]string{
		"TaskID":      strconv.FormatInt(t.TaskID, 10),
		"EmployeeID":  strconv.FormatInt(t.EmployeeID, 10),
		"ProjectID":   strconv.FormatInt(t.ProjectID, 10),
		"Description": t.Description,
		"Status":      t.Status,
	}
	if t.DeadlineDate != nil {
		data["DeadlineDate"] = t.DeadlineDate.Format("2006-01-02")
	}
	return data
}

// SendTaskAssignedEmail notifies to that a task was assigned.
func (c *Client) SendTaskAssignedEmail(to string, t TaskAssigned) error {
	return c.SendEmail(
		to,
		fmt.Sprintf("Task #%d assigned to employee #%d", t.TaskID, t.EmployeeID),
		TemplateTaskAssigned,
		t.templateData(),
	)
}

// PreviewData holds sample values for rendering each template locally.
var PreviewData = map[Template]map[string]string{
	TemplateTaskAssigned: TaskAssigned{
		TaskID:      42,
		EmployeeID:  7,
		ProjectID:   3,
		Description: "Write the release notes",
		Status:      "assigned",
	}.templateData(),
}
