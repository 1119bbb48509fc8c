// Package model contains the domain records stored by the repository.
//
// The types are plain data holders mirroring the projects, employees and
// tasks tables; Validate checks field-level rules before a write.
package model

import "time"

// Base carries the columns every table shares.
type Base struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
