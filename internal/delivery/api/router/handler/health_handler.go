package handler

import (
	"context"
	"net/http"
	"time"

	"rentradar/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck reports service status and database reachability
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNREACHABLE", "Database is unreachable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "ok",
	})
}
