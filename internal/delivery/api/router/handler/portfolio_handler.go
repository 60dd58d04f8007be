package handler

import (
	"log/slog"
	"net/http"

	"boothly/internal/delivery/api/response"
	"boothly/internal/domain/entity"
	"boothly/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PortfolioHandlerParams holds dependencies for PortfolioHandler, injected by Fx.
type PortfolioHandlerParams struct {
	fx.In

	PortfolioUC usecase.PortfolioUsecase
	Logger      *slog.Logger
}

// PortfolioHandler serves the portfolio page
type PortfolioHandler struct {
	portfolioUC usecase.PortfolioUsecase
	logger      *slog.Logger
}

// NewPortfolioHandler is the constructor for PortfolioHandler
func NewPortfolioHandler(params PortfolioHandlerParams) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioUC: params.PortfolioUC,
		logger:      params.Logger,
	}
}

// PortfolioImageRequest represents one portfolio image in a request body
type PortfolioImageRequest struct {
	ID          string `json:"id" validate:"omitempty,max=64"`
	URL         string `json:"url" validate:"required,url"`
	Title       string `json:"title" validate:"max=100"`
	Description string `json:"description" validate:"max=500"`
}

// ReplacePortfolioRequest replaces the whole portfolio
type ReplacePortfolioRequest struct {
	Images []PortfolioImageRequest `json:"images" validate:"required,unique=ID,dive"`
}

func (r PortfolioImageRequest) toEntity() entity.PortfolioImage {
	return entity.PortfolioImage{
		ID:          r.ID,
		URL:         r.URL,
		Title:       r.Title,
		Description: r.Description,
	}
}

// ListImages handles listing the portfolio
func (h *PortfolioHandler) ListImages(c echo.Context) error {
	images, err := h.portfolioUC.ListImages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, images)
}

// ReplaceImages handles overwriting the portfolio
func (h *PortfolioHandler) ReplaceImages(c echo.Context) error {
	var req ReplacePortfolioRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if details := missingIDs("images", req.Images, func(r PortfolioImageRequest) string { return r.ID }); details != nil {
		return response.ValidationDetails(c, details)
	}

	images := make([]entity.PortfolioImage, 0, len(req.Images))
	for _, r := range req.Images {
		images = append(images, r.toEntity())
	}

	saved, err := h.portfolioUC.ReplaceImages(c.Request().Context(), images)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, saved)
}

// AddImage handles uploading one portfolio image
func (h *PortfolioHandler) AddImage(c echo.Context) error {
	var req PortfolioImageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	image, err := h.portfolioUC.AddImage(c.Request().Context(), &usecase.AddPortfolioImageInput{
		ID:          req.ID,
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, image)
}

// RemoveImage handles deleting one portfolio image
func (h *PortfolioHandler) RemoveImage(c echo.Context) error {
	if err := h.portfolioUC.RemoveImage(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
