package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck reports whether one backing component is usable.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
	logger *logger.Logger
	now    func() time.Time
}

func NewHealthHandler(checks map[string]HealthCheck, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: log,
		now:    time.Now,
	}
}

// Check answers 503 with status "degraded" when any component check fails.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status, code := "ok", http.StatusOK
	components := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.Warn(ctx, "Health check failed",
				"component", name,
				"error", err,
			)
			components[name] = "unavailable"
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		components[name] = "ok"
	}

	return c.JSON(code, map[string]interface{}{
		"status":     status,
		"components": components,
		"timestamp":  h.now().UTC().Format(time.RFC3339),
	})
}
