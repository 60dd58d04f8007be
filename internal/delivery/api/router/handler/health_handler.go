// Package handler holds the echo handlers of the dashboard API and the public booking page.
package handler

import (
	"net/http"

	"boothly/internal/delivery/api/response"
	"boothly/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Stores repository.StoreProvider
}

// HealthHandler reports liveness and whether the state store is mounted.
type HealthHandler struct {
	stores repository.StoreProvider
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{stores: params.Stores}
}

// HealthCheck answers 200 while a store is mounted, the store error otherwise
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	if _, err := h.stores.Store(); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
