package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Employee is a member of staff. Every employee belongs to a project; the
// repository checks the project exists before inserting.
type Employee struct {
	Base
	Name        string  `json:"name" db:"name"`
	Designation string  `json:"designation" db:"designation"`
	Gender      string  `json:"gender" db:"gender"`
	Salary      float64 `json:"salary" db:"salary"`
	ProjectID   int64   `json:"projectId" db:"project_id"`
	Role        string  `json:"role" db:"role"`
}

func (e *Employee) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Name, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&e.Designation, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&e.Gender, validation.Required, validation.Length(1, 32)),
		validation.Field(&e.Salary, validation.Min(0.0)),
		validation.Field(&e.ProjectID, validation.Required, validation.Min(int64(1))),
		validation.Field(&e.Role, validation.Required, validation.Length(1, 64)),
	)
}
