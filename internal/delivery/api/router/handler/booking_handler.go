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

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC  usecase.BookingUsecase
	EarningsUC usecase.EarningsUsecase
	Logger     *slog.Logger
}

// BookingHandler serves the bookings, dashboard and earnings pages
type BookingHandler struct {
	bookingUC  usecase.BookingUsecase
	earningsUC usecase.EarningsUsecase
	logger     *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC:  params.BookingUC,
		earningsUC: params.EarningsUC,
		logger:     params.Logger,
	}
}

// ListBookingsQuery holds the bookings page filters
type ListBookingsQuery struct {
	Status string `json:"status" query:"status" validate:"omitempty,oneof=all pending confirmed completed cancelled"`
	Query  string `json:"q" query:"q" validate:"max=100"`
}

// BookingRequest represents a booking in a request body
type BookingRequest struct {
	ID           string  `json:"id" validate:"omitempty,max=64"`
	ClientName   string  `json:"clientName" validate:"required,max=100"`
	ClientEmail  string  `json:"clientEmail" validate:"omitempty,email"`
	ClientAvatar string  `json:"clientAvatar" validate:"omitempty,url"`
	ServiceID    string  `json:"serviceId" validate:"required"`
	ServiceName  string  `json:"serviceName" validate:"required,max=100"`
	Price        float64 `json:"price" validate:"gte=0"`
	Date         string  `json:"date" validate:"required,date"`
	Time         string  `json:"time" validate:"required,clock"`
	Duration     int     `json:"duration" validate:"gt=0"`
	Status       string  `json:"status" validate:"omitempty,booking_status"`
	Notes        string  `json:"notes" validate:"max=1000"`
}

// ReplaceBookingsRequest replaces every booking
type ReplaceBookingsRequest struct {
	Bookings []BookingRequest `json:"bookings" validate:"required,unique=ID,dive"`
}

// UpdateStatusRequest moves a booking to another status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,booking_status"`
}

func (r BookingRequest) toEntity() entity.Booking {
	return entity.Booking{
		ID:           r.ID,
		ClientName:   r.ClientName,
		ClientEmail:  r.ClientEmail,
		ClientAvatar: r.ClientAvatar,
		ServiceID:    r.ServiceID,
		ServiceName:  r.ServiceName,
		Price:        r.Price,
		Date:         r.Date,
		Time:         r.Time,
		Duration:     r.Duration,
		Status:       entity.BookingStatus(r.Status),
		Notes:        r.Notes,
	}
}

// ListBookings handles listing bookings filtered by status and search text
func (h *BookingHandler) ListBookings(c echo.Context) error {
	var query ListBookingsQuery
	if ok, err := bindAndValidate(c, &query); !ok {
		return err
	}

	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), entity.BookingFilter{
		Status: query.Status,
		Query:  query.Query,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookings)
}

// ReplaceBookings handles overwriting every booking
func (h *BookingHandler) ReplaceBookings(c echo.Context) error {
	var req ReplaceBookingsRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if details := missingIDs("bookings", req.Bookings, func(r BookingRequest) string { return r.ID }); details != nil {
		return response.ValidationDetails(c, details)
	}

	bookings := make([]entity.Booking, 0, len(req.Bookings))
	for _, r := range req.Bookings {
		booking := r.toEntity()
		if booking.Status == "" {
			booking.Status = entity.BookingStatusPending
		}
		bookings = append(bookings, booking)
	}

	saved, err := h.bookingUC.ReplaceBookings(c.Request().Context(), bookings)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, saved)
}

// AddBooking handles entering a booking by hand
func (h *BookingHandler) AddBooking(c echo.Context) error {
	var req BookingRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	b := req.toEntity()
	booking, err := h.bookingUC.AddBooking(c.Request().Context(), &usecase.AddBookingInput{
		ID:           b.ID,
		ClientName:   b.ClientName,
		ClientEmail:  b.ClientEmail,
		ClientAvatar: b.ClientAvatar,
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		Price:        b.Price,
		Date:         b.Date,
		Time:         b.Time,
		Duration:     b.Duration,
		Status:       b.Status,
		Notes:        b.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, booking)
}

// UpdateStatus handles confirming, completing or cancelling a booking
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	booking, err := h.bookingUC.UpdateStatus(c.Request().Context(), c.Param("id"), entity.BookingStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking)
}

// GetDashboard handles the dashboard overview
func (h *BookingHandler) GetDashboard(c echo.Context) error {
	summary, err := h.bookingUC.GetDashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// GetEarnings handles the earnings page
func (h *BookingHandler) GetEarnings(c echo.Context) error {
	earnings, err := h.earningsUC.GetEarnings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, earnings)
}
