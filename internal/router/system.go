package router

import (
	"github.com/deppfellow/project-manager/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts the unauthenticated endpoints: health, the
// docs UI and the static assets it loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", h.OpenAPI.StaticDir())

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
