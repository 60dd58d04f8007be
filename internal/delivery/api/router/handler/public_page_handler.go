package handler

import (
	"log/slog"
	"net/http"

	"boothly/internal/delivery/api/response"
	"boothly/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PublicPageHandlerParams holds dependencies for PublicPageHandler, injected by Fx.
type PublicPageHandlerParams struct {
	fx.In

	PublicPageUC usecase.PublicPageUsecase
	Logger       *slog.Logger
}

// PublicPageHandler serves the client-facing booking page
type PublicPageHandler struct {
	publicPageUC usecase.PublicPageUsecase
	logger       *slog.Logger
}

// NewPublicPageHandler is the constructor for PublicPageHandler
func NewPublicPageHandler(params PublicPageHandlerParams) *PublicPageHandler {
	return &PublicPageHandler{
		publicPageUC: params.PublicPageUC,
		logger:       params.Logger,
	}
}

// BookingRequestRequest represents a client's booking request body
type BookingRequestRequest struct {
	ServiceID   string `json:"serviceId" validate:"required"`
	SlotID      string `json:"slotId" validate:"required"`
	ClientName  string `json:"clientName" validate:"required,max=100"`
	ClientEmail string `json:"clientEmail" validate:"required,email"`
	Notes       string `json:"notes" validate:"max=1000"`
}

// GetPage handles rendering the public booking page data
func (h *PublicPageHandler) GetPage(c echo.Context) error {
	page, err := h.publicPageUC.GetPage(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// RequestBooking handles a client's booking request
func (h *PublicPageHandler) RequestBooking(c echo.Context) error {
	var req BookingRequestRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	booking, err := h.publicPageUC.RequestBooking(c.Request().Context(), c.Param("username"), &usecase.BookingRequestInput{
		ServiceID:   req.ServiceID,
		SlotID:      req.SlotID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Notes:       req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, booking)
}

// GetQRCode handles serving the booking page QR code as a PNG
func (h *PublicPageHandler) GetQRCode(c echo.Context) error {
	png, err := h.publicPageUC.GenerateQRCode(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
