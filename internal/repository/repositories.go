package repository

import (
	"github.com/deppfellow/category-service/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Category *CategoryRepository
}

// NewRepositories builds every repository on top of the server's database handle.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Category: NewCategoryRepository(s.DB.SQL),
	}
}
