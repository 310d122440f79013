package handler

import (
	"github.com/deppfellow/category-service/internal/server"
	"github.com/deppfellow/category-service/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Category *CategoryHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Category: NewCategoryHandler(s, services.Category),
	}
}
