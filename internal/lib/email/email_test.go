package email

import (
	"strings"
	"testing"
	"time"
)

func TestRenderPreviews(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			html, err := Render(name, data)
			if err != nil {
				t.Fatalf("Render(%s) error: %v", name, err)
			}
			if !strings.Contains(html, "<html>") {
				t.Errorf("Render(%s) did not produce html", name)
			}
		})
	}
}

func TestRenderTaskAssigned(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	data := TaskAssigned{
		TaskID:       12,
		EmployeeID:   5,
		ProjectID:    2,
		Description:  "Fix <login> flow",
		Status:       "assigned",
		DeadlineDate: &deadline,
	}.templateData()

	html, err := Render(TemplateTaskAssigned, data)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	for _, want := range []string{"Task #12 assigned", "#5", "#2", "2026-03-01", "Fix &lt;login&gt; flow"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestRenderTaskAssignedWithoutDeadline(t *testing.T) {
	html, err := Render(TemplateTaskAssigned, TaskAssigned{TaskID: 1, Description: "x"}.templateData())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.Contains(html, "Deadline") {
		t.Error("deadline row should be omitted when no deadline is set")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := Render(Template("missing"), nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
