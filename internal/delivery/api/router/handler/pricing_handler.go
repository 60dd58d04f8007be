package handler

import (
	"log/slog"
	"net/http"

	"boothly/internal/delivery/api/response"
	"boothly/internal/domain/entity"
	"boothly/internal/usecase"
	"boothly/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PricingHandlerParams holds dependencies for PricingHandler, injected by Fx.
type PricingHandlerParams struct {
	fx.In

	PricingUC usecase.PricingUsecase
	Logger    *slog.Logger
}

// PricingHandler serves the pricing page
type PricingHandler struct {
	pricingUC usecase.PricingUsecase
	logger    *slog.Logger
}

// NewPricingHandler is the constructor for PricingHandler
func NewPricingHandler(params PricingHandlerParams) *PricingHandler {
	return &PricingHandler{
		pricingUC: params.PricingUC,
		logger:    params.Logger,
	}
}

// ServiceRequest represents a service in a request body
type ServiceRequest struct {
	ID          string  `json:"id" validate:"omitempty,max=64"`
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    int     `json:"duration" validate:"gt=0"`
}

// ReplaceServicesRequest replaces the whole price list
type ReplaceServicesRequest struct {
	Services []ServiceRequest `json:"services" validate:"required,unique=ID,dive"`
}

// ServiceResponse is a service with its duration spelled out for display
type ServiceResponse struct {
	entity.Service
	DurationLabel string `json:"durationLabel"`
}

func newServiceResponse(s entity.Service) ServiceResponse {
	return ServiceResponse{
		Service:       s,
		DurationLabel: util.FormatDuration(s.DurationValue()),
	}
}

func newServiceResponses(services []entity.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, newServiceResponse(s))
	}

	return out
}

func (r ServiceRequest) toInput() *usecase.ServiceInput {
	return &usecase.ServiceInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
	}
}

// ListServices handles listing the price list
func (h *PricingHandler) ListServices(c echo.Context) error {
	services, err := h.pricingUC.ListServices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newServiceResponses(services))
}

// ReplaceServices handles overwriting the price list
func (h *PricingHandler) ReplaceServices(c echo.Context) error {
	var req ReplaceServicesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if details := missingIDs("services", req.Services, func(r ServiceRequest) string { return r.ID }); details != nil {
		return response.ValidationDetails(c, details)
	}

	services := make([]entity.Service, 0, len(req.Services))
	for _, r := range req.Services {
		services = append(services, entity.Service{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Price:       r.Price,
			Duration:    r.Duration,
		})
	}

	saved, err := h.pricingUC.ReplaceServices(c.Request().Context(), services)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newServiceResponses(saved))
}

// AddService handles adding a service
func (h *PricingHandler) AddService(c echo.Context) error {
	var req ServiceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	service, err := h.pricingUC.AddService(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newServiceResponse(*service))
}

// UpdateService handles editing a service. The path id wins over any body id.
func (h *PricingHandler) UpdateService(c echo.Context) error {
	var req ServiceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	service, err := h.pricingUC.UpdateService(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newServiceResponse(*service))
}

// DeleteService handles removing a service
func (h *PricingHandler) DeleteService(c echo.Context) error {
	if err := h.pricingUC.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
