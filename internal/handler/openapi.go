package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/project-manager/internal/server"
	"github.com/labstack/echo/v4"
)

// DefaultStaticDir holds openapi.html and openapi.json relative to the
// working directory.
const DefaultStaticDir = "static"

// OpenAPIHandler serves the API reference UI. The page loads openapi.json
// from the /static route.
type OpenAPIHandler struct {
	Handler
	staticDir string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler:   NewHandler(s),
		staticDir: DefaultStaticDir,
	}
}

// StaticDir reports the directory openapi.html and openapi.json are read from.
func (h *OpenAPIHandler) StaticDir() string {
	return h.staticDir
}

// WithStaticDir points the handler at another static directory.
func (h *OpenAPIHandler) WithStaticDir(dir string) *OpenAPIHandler {
	h.staticDir = dir
	return h
}

func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := os.ReadFile(filepath.Join(h.staticDir, "openapi.html"))
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTML(http.StatusOK, string(page)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}
	return nil
}
