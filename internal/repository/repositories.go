package repository

import (
	"github.com/deppfellow/project-manager/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Project *ProjectRepository
}

// NewRepositories builds the repositories over the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Project: NewProjectRepository(s.DB.Pool, s.Logger),
	}
}
