package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/project-manager/internal/config"
	"github.com/deppfellow/project-manager/internal/errs"
	"github.com/deppfellow/project-manager/internal/handler"
	"github.com/deppfellow/project-manager/internal/middleware"
	"github.com/deppfellow/project-manager/internal/server"
	"github.com/deppfellow/project-manager/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer(logger *zerolog.Logger, rps float64) *server.Server {
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:               "0",
				CORSAllowedOrigins: []string{"*"},
				RateLimitPerSecond: rps,
			},
		},
		Logger: logger,
	}
}

func newRouterFor(s *server.Server) *echo.Echo {
	services := &service.Services{
		Project:  service.NewProjectService(nil, s.Logger),
		Employee: service.NewEmployeeService(nil, s.Logger),
		Task:     service.NewTaskService(nil, nil, s.Logger),
	}
	return NewRouter(s, handler.NewHandlers(s, services), services)
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	return newRouterFor(newTestServer(&logger, 0))
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("request id header missing")
	}
}

func TestAPIRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/v1/projects", "/api/v1/employees/1", "/api/v1/projects/1/employees/2/tasks"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want 401", path, rec.Code)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRoutesRegistered(t *testing.T) {
	r := newTestRouter(t)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"POST /api/v1/projects",
		"PUT /api/v1/employees/:id/project",
		"PATCH /api/v1/tasks/:id/status",
		"PUT /api/v1/tasks/:id/assignee",
		"GET /api/v1/projects/:project_id/employees/:employee_id/tasks",
		"GET /docs",
	} {
		if !registered[route] {
			t.Errorf("route %s not registered", route)
		}
	}
}

func TestRateLimitedRequestIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r := newRouterFor(newTestServer(&logger, 1))

	var last *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		last = httptest.NewRecorder()
		r.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/status", nil))
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", last.Code)
	}

	logs := buf.String()
	for _, want := range []string{"rate limit exceeded", `"status":429`, `"request_id":`} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %s:\n%s", want, logs)
		}
	}
}

func TestPanicInMiddlewareIsRecovered(t *testing.T) {
	// Without a server logger the context middleware panics.
	r := newRouterFor(newTestServer(nil, 0))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body errs.HTTPError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not an HTTPError body: %v (%s)", err, rec.Body.String())
	}
	if body.Code != "INTERNAL_SERVER_ERROR" {
		t.Errorf("code = %q", body.Code)
	}
}
