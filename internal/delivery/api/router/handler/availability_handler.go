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

// AvailabilityHandlerParams holds dependencies for AvailabilityHandler, injected by Fx.
type AvailabilityHandlerParams struct {
	fx.In

	AvailabilityUC usecase.AvailabilityUsecase
	Logger         *slog.Logger
}

// AvailabilityHandler serves the availability page and the onboarding availability step
type AvailabilityHandler struct {
	availabilityUC usecase.AvailabilityUsecase
	logger         *slog.Logger
}

// NewAvailabilityHandler is the constructor for AvailabilityHandler
func NewAvailabilityHandler(params AvailabilityHandlerParams) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUC: params.AvailabilityUC,
		logger:         params.Logger,
	}
}

// TimeSlotRequest represents a time slot in a request body
type TimeSlotRequest struct {
	ID        string `json:"id" validate:"required,max=64"`
	Day       string `json:"day" validate:"required,max=20"`
	Date      string `json:"date" validate:"required,date"`
	Time      string `json:"time" validate:"required,clock"`
	Available bool   `json:"available"`
}

// SettingsRequest represents the booking rules in a request body
type SettingsRequest struct {
	BufferMinutes         int  `json:"bufferMinutes" validate:"gte=0,lte=240"`
	MaxAdvanceBookingDays int  `json:"maxAdvanceBookingDays" validate:"gte=1,lte=365"`
	AllowSameDay          bool `json:"allowSameDay"`
}

// UpdateAvailabilityRequest replaces each part that is present.
// A null or missing timeSlots keeps the slots; an empty list clears them.
type UpdateAvailabilityRequest struct {
	WeeklySchedule *entity.WeeklySchedule `json:"weeklySchedule"`
	TimeSlots      []TimeSlotRequest      `json:"timeSlots" validate:"omitempty,unique=ID,dive"`
	Settings       *SettingsRequest       `json:"settings"`
}

// SetupAvailabilityRequest is the onboarding availability form
type SetupAvailabilityRequest struct {
	WorkingDays           []string `json:"workingDays" validate:"required,min=1,unique,dive,weekday"`
	StartTime             string   `json:"startTime" validate:"required,clock"`
	EndTime               string   `json:"endTime" validate:"required,clock"`
	BufferMinutes         int      `json:"bufferMinutes" validate:"gte=0,lte=240"`
	MaxAdvanceBookingDays int      `json:"maxAdvanceBookingDays" validate:"gte=1,lte=365"`
	AllowSameDay          bool     `json:"allowSameDay"`
}

func (r SettingsRequest) toEntity() entity.AvailabilitySettings {
	return entity.AvailabilitySettings{
		BufferMinutes:         r.BufferMinutes,
		MaxAdvanceBookingDays: r.MaxAdvanceBookingDays,
		AllowSameDay:          r.AllowSameDay,
	}
}

// GetAvailability handles reading the whole availability
func (h *AvailabilityHandler) GetAvailability(c echo.Context) error {
	availability, err := h.availabilityUC.GetAvailability(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, availability)
}

// UpdateAvailability handles a partial availability update
func (h *AvailabilityHandler) UpdateAvailability(c echo.Context) error {
	var req UpdateAvailabilityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	var patch entity.AvailabilityPatch
	patch.WeeklySchedule = req.WeeklySchedule
	if req.TimeSlots != nil {
		slots := make([]entity.TimeSlot, 0, len(req.TimeSlots))
		for _, r := range req.TimeSlots {
			slots = append(slots, entity.TimeSlot{
				ID:        r.ID,
				Day:       r.Day,
				Date:      r.Date,
				Time:      r.Time,
				Available: r.Available,
			})
		}
		patch.TimeSlots = &slots
	}
	if req.Settings != nil {
		settings := req.Settings.toEntity()
		patch.Settings = &settings
	}

	availability, err := h.availabilityUC.UpdateAvailability(c.Request().Context(), patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, availability)
}

// ListSlots handles listing time slots grouped by day
func (h *AvailabilityHandler) ListSlots(c echo.Context) error {
	groups, err := h.availabilityUC.GroupSlotsByDay(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups)
}

// ToggleBlock handles flipping one block of the weekly schedule
func (h *AvailabilityHandler) ToggleBlock(c echo.Context) error {
	day, ok := entity.ParseWeekday(c.Param("day"))
	if !ok {
		return response.BadRequest(c, "INVALID_DAY", "Unknown day of the week")
	}

	block, ok := entity.ParseTimeBlock(c.Param("block"))
	if !ok {
		return response.BadRequest(c, "INVALID_TIME_BLOCK", "Time block must be morning, afternoon or evening")
	}

	schedule, err := h.availabilityUC.ToggleBlock(c.Request().Context(), day, block)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// Setup handles the onboarding availability form
func (h *AvailabilityHandler) Setup(c echo.Context) error {
	var req SetupAvailabilityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	// Both are validated HH:MM, so string order is time order
	if req.EndTime <= req.StartTime {
		return response.ValidationDetails(c, map[string]string{"endTime": "after_start"})
	}

	days := make([]entity.Weekday, 0, len(req.WorkingDays))
	for _, d := range req.WorkingDays {
		day, _ := entity.ParseWeekday(d)
		days = append(days, day)
	}

	availability, err := h.availabilityUC.Setup(c.Request().Context(), &usecase.AvailabilitySetupInput{
		WorkingDays:           days,
		StartTime:             req.StartTime,
		EndTime:               req.EndTime,
		BufferMinutes:         req.BufferMinutes,
		MaxAdvanceBookingDays: req.MaxAdvanceBookingDays,
		AllowSameDay:          req.AllowSameDay,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, availability)
}
