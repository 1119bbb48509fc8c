package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/project-manager/internal/config"
	"github.com/deppfellow/project-manager/internal/middleware"
	"github.com/deppfellow/project-manager/internal/server"
	"github.com/labstack/echo/v4"
)

const defaultHealthCheckTimeout = 5 * time.Second

// HealthCheck pings one dependency. A failing Required check turns the
// whole response into a 503; other failures are only reported.
type HealthCheck struct {
	Name     string
	Required bool
	Ping     func(ctx context.Context) error
}

type HealthHandler struct {
	Handler
	checks  []HealthCheck
	timeout time.Duration
}

// NewHealthHandler registers the database and Redis checks that are both
// available on s and listed in the observability health check config.
func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		timeout: defaultHealthCheckTimeout,
	}

	cfg := healthChecksConfig(s.Config)
	if cfg.Timeout > 0 {
		h.timeout = cfg.Timeout
	}
	if !cfg.Enabled {
		return h
	}

	if s.DB != nil && cfg.HasCheck("database") {
		h.checks = append(h.checks, HealthCheck{
			Name:     "database",
			Required: true,
			Ping:     s.DB.Pool.Ping,
		})
	}
	if s.Redis != nil && cfg.HasCheck("redis") {
		h.checks = append(h.checks, HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error {
				return s.Redis.Ping(ctx).Err()
			},
		})
	}

	return h
}

func healthChecksConfig(cfg *config.Config) config.HealthChecksConfig {
	if cfg == nil || cfg.Observability == nil {
		return config.DefaultObservabilityConfig().HealthChecks
	}
	return cfg.Observability.HealthChecks
}

// WithChecks replaces the registered checks.
func (h *HealthHandler) WithChecks(checks ...HealthCheck) *HealthHandler {
	h.checks = checks
	return h
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth answers 200 when every required dependency responds and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   start.UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult, len(h.checks)),
	}
	healthy := true

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.Ping(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			response.Checks[check.Name] = checkResult{
				Status:       "unhealthy",
				ResponseTime: elapsed.String(),
				Error:        err.Error(),
			}
			if check.Required {
				healthy = false
			}

			logger.Error().
				Err(err).
				Str("check", check.Name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordHealthCheckError(check.Name, err, elapsed)
			continue
		}

		response.Checks[check.Name] = checkResult{
			Status:       "healthy",
			ResponseTime: elapsed.String(),
		}
		logger.Debug().
			Str("check", check.Name).
			Dur("response_time", elapsed).
			Msg("health check passed")
	}

	if !healthy {
		response.Status = "unhealthy"
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordHealthCheckError(name string, err error, elapsed time.Duration) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]interface{}{
		"check_type":       name,
		"operation":        "health_check",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
