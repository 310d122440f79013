// Package router builds the echo instance: global middleware, system
// routes and the versioned API.
package router

import (
	"github.com/deppfellow/category-service/internal/handler"
	"github.com/deppfellow/category-service/internal/middleware"
	"github.com/deppfellow/category-service/internal/server"
	"github.com/deppfellow/category-service/internal/service"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter wires every middleware and route.
//
// Order matters: the request id and New Relic transaction must exist before
// the request logger is built, and authentication runs inside the API group
// so it can enrich that logger.
func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s, services)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1", middlewares.Auth.Authenticate())
	registerCategoryRoutes(v1, h.Category, middlewares.Auth)

	return router
}
