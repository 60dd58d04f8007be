package usecase

import (
	"context"

	"boothly/internal/domain/entity"
)

// BookingUsecase defines the operations of the bookings and dashboard pages.
type BookingUsecase interface {
	ListBookings(ctx context.Context, filter entity.BookingFilter) ([]entity.Booking, error)
	ReplaceBookings(ctx context.Context, bookings []entity.Booking) ([]entity.Booking, error)
	AddBooking(ctx context.Context, input *AddBookingInput) (*entity.Booking, error)

	// UpdateStatus moves one booking to status. Every transition is allowed.
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error)

	GetDashboard(ctx context.Context) (*DashboardSummary, error)
}

// AddBookingInput defines a booking entered by the provider.
// Empty ID is generated and empty Status becomes pending.
type AddBookingInput struct {
	ID           string
	ClientName   string
	ClientEmail  string
	ClientAvatar string
	ServiceID    string
	ServiceName  string
	Price        float64
	Date         string
	Time         string
	Duration     int
	Status       entity.BookingStatus
	Notes        string
}

// DashboardSummary is the overview shown on the dashboard page.
type DashboardSummary struct {
	TotalBookings        int                          `json:"totalBookings"`
	StatusCounts         map[entity.BookingStatus]int `json:"statusCounts"`
	UpcomingBookings     []entity.Booking             `json:"upcomingBookings"`
	CurrentMonthEarnings float64                      `json:"currentMonthEarnings"`
}
