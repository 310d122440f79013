package router

import (
	"github.com/deppfellow/category-service/internal/handler"
	"github.com/deppfellow/category-service/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerCategoryRoutes mounts /categories. Reads are public; every write
// requires a logged-in owner or employee while the API is not paused.
func registerCategoryRoutes(g *echo.Group, h *handler.CategoryHandler, auth *middleware.AuthMiddleware) {
	categories := g.Group("/categories")
	canManage := auth.CanManageCategories()

	categories.GET("", h.List())
	categories.GET("/pagination", h.ListPaginated())
	categories.GET("/:id", h.Get())

	categories.POST("", h.Create(), canManage)
	categories.PUT("/:id", h.Update(), canManage)
	categories.DELETE("/:id", h.Delete(), canManage)
}
