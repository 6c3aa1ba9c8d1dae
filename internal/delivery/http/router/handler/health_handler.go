package handler

import (
	"net/http"

	"elevenstore/internal/delivery/http/response"
	"elevenstore/internal/delivery/sse"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and the number of open page sessions
type HealthHandler struct {
	registry *sse.Registry
}

func NewHealthHandler(registry *sse.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.registry.Len(),
	})
}
