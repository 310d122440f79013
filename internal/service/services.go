package service

import (
	"github.com/deppfellow/category-service/internal/repository"
	"github.com/deppfellow/category-service/internal/server"
)

type Services struct {
	Auth     *AuthService
	Category *CategoryService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Auth:     NewAuthService(s),
		Category: NewCategoryService(repos.Category),
	}, nil
}
