package handler

import (
	"net/http"

	"boothly/internal/delivery/api/response"
	"boothly/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LayoutHandlerParams holds dependencies for LayoutHandler, injected by Fx.
type LayoutHandlerParams struct {
	fx.In

	LayoutUC usecase.LayoutUsecase
}

// LayoutHandler serves the shared layout flags
type LayoutHandler struct {
	layoutUC usecase.LayoutUsecase
}

// NewLayoutHandler is the constructor for LayoutHandler
func NewLayoutHandler(params LayoutHandlerParams) *LayoutHandler {
	return &LayoutHandler{layoutUC: params.LayoutUC}
}

// SetSidebarRequest sets the sidebar flag
type SetSidebarRequest struct {
	Collapsed *bool `json:"collapsed" validate:"required"`
}

// GetLayout handles reading the layout flags
func (h *LayoutHandler) GetLayout(c echo.Context) error {
	layout, err := h.layoutUC.GetLayout(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, layout)
}

// ToggleSidebar handles flipping the sidebar flag
func (h *LayoutHandler) ToggleSidebar(c echo.Context) error {
	layout, err := h.layoutUC.ToggleSidebar(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, layout)
}

// SetSidebar handles setting the sidebar flag
func (h *LayoutHandler) SetSidebar(c echo.Context) error {
	var req SetSidebarRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	layout, err := h.layoutUC.SetSidebarCollapsed(c.Request().Context(), *req.Collapsed)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, layout)
}
