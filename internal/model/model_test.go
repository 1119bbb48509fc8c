package model

import (
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ptr[T any](v T) *T { return &v }

func TestEmployeeValidate(t *testing.T) {
	valid := func() Employee {
		return Employee{
			Name:        "John",
			Designation: "SDE-1",
			Gender:      "Male",
			Salary:      50000,
			ProjectID:   1,
			Role:        "employee",
		}
	}

	tests := []struct {
		name      string
		mutate    func(e *Employee)
		wantField string
	}{
		{name: "valid", mutate: func(e *Employee) {}},
		{name: "missing name", mutate: func(e *Employee) { e.Name = "" }, wantField: "name"},
		{name: "negative salary", mutate: func(e *Employee) { e.Salary = -1 }, wantField: "salary"},
		{name: "zero project id", mutate: func(e *Employee) { e.ProjectID = 0 }, wantField: "projectId"},
		{name: "missing role", mutate: func(e *Employee) { e.Role = "" }, wantField: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid()
			tt.mutate(&e)
			err := e.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verrs validation.Errors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() = %v, want validation.Errors", err)
			}
			if _, ok := verrs[tt.wantField]; !ok {
				t.Errorf("Validate() errors = %v, want entry for %q", verrs, tt.wantField)
			}
		})
	}
}

func TestProjectValidate(t *testing.T) {
	p := Project{Name: "Apollo", StartDate: time.Now(), Status: ProjectStatusDev}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	p.Status = "shipped"
	if err := p.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for unknown status")
	}
}

func TestTaskValidate(t *testing.T) {
	alloc := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	task := Task{
		Description:    "Write the migration",
		Status:         TaskStatusAssigned,
		EmployeeID:     1,
		ProjectID:      1,
		AllocationDate: &alloc,
		DeadlineDate:   ptr(alloc.Add(48 * time.Hour)),
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	task.DeadlineDate = ptr(alloc.Add(-time.Hour))
	var verrs validation.Errors
	if err := task.Validate(); !errors.As(err, &verrs) {
		t.Fatalf("Validate() = %v, want validation.Errors", err)
	}
	if _, ok := verrs["deadlineDate"]; !ok {
		t.Errorf("errors = %v, want deadlineDate entry", verrs)
	}
}

func TestValidTaskStatus(t *testing.T) {
	for _, s := range []TaskStatus{TaskStatusAssigned, TaskStatusStarted, TaskStatusCompleted} {
		if !ValidTaskStatus(s) {
			t.Errorf("ValidTaskStatus(%q) = false", s)
		}
	}
	if ValidTaskStatus("blocked") {
		t.Error(`ValidTaskStatus("blocked") = true`)
	}
}
