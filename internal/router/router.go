// Package router builds the Echo instance: it installs the middleware
// chain and maps the API routes to their handlers.
package router

import (
	"github.com/deppfellow/project-manager/internal/handler"
	"github.com/deppfellow/project-manager/internal/middleware"
	"github.com/deppfellow/project-manager/internal/server"
	"github.com/deppfellow/project-manager/internal/service"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Recover wraps every other middleware. The request logger must exist
	// before anything that can reject a request, the rate limiter included.
	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1", middlewares.Auth.RequireAuth)
	registerV1Routes(v1, h)

	return router
}
