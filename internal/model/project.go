package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ProjectStatus string

const (
	ProjectStatusStarted  ProjectStatus = "started"
	ProjectStatusDev      ProjectStatus = "dev"
	ProjectStatusBuild    ProjectStatus = "build"
	ProjectStatusTest     ProjectStatus = "test"
	ProjectStatusDeployed ProjectStatus = "deployed"
)

// MaxNameLength bounds name columns (VARCHAR(255)).
const MaxNameLength = 255

type Project struct {
	Base
	Name        string        `json:"name" db:"name"`
	Description string        `json:"description" db:"description"`
	StartDate   time.Time     `json:"startDate" db:"start_date"`
	Status      ProjectStatus `json:"status" db:"status"`
}

func (p *Project) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&p.StartDate, validation.Required),
		validation.Field(&p.Status, validation.Required, validation.In(
			ProjectStatusStarted,
			ProjectStatusDev,
			ProjectStatusBuild,
			ProjectStatusTest,
			ProjectStatusDeployed,
		)),
	)
}
