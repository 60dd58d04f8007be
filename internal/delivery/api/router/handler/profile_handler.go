package handler

import (
	"log/slog"
	"net/http"

	"boothly/internal/delivery/api/response"
	"boothly/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the profile page and the onboarding completion step
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is a partial profile update. Omitted fields are kept.
type UpdateProfileRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	Username     *string `json:"username" validate:"omitempty,min=3,max=50,username"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Bio          *string `json:"bio" validate:"omitempty,max=500"`
	Phone        *string `json:"phone" validate:"omitempty,max=32"`
	ProfileImage *string `json:"profileImage" validate:"omitempty,url"`
}

// GetProfile handles retrieving the provider profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUC.GetProfile(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile handles a partial profile update
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		Bio:          req.Bio,
		Phone:        req.Phone,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// CompleteOnboarding handles the last onboarding step
func (h *ProfileHandler) CompleteOnboarding(c echo.Context) error {
	profile, err := h.profileUC.CompleteOnboarding(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
