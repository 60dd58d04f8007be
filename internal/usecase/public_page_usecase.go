package usecase

import (
	"context"

	"boothly/internal/domain/entity"
)

// PublicPageUsecase serves the client-facing booking page of a provider.
type PublicPageUsecase interface {
	// GetPage resolves username to the provider's public page.
	GetPage(ctx context.Context, username string) (*PublicPage, error)

	// RequestBooking appends a pending booking for an available slot.
	RequestBooking(ctx context.Context, username string, input *BookingRequestInput) (*entity.Booking, error)

	// GenerateQRCode renders the page URL as a PNG QR code.
	GenerateQRCode(ctx context.Context, username string) ([]byte, error)
}

// PublicProfile is the part of the profile visible to clients.
type PublicProfile struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}

// PublicPage is everything a client sees on the booking page.
type PublicPage struct {
	Profile        PublicProfile           `json:"profile"`
	URL            string                  `json:"url"`
	Portfolio      []entity.PortfolioImage `json:"portfolio"`
	Services       []entity.Service        `json:"services"`
	AvailableSlots []entity.TimeSlot       `json:"availableSlots"`
}

// BookingRequestInput is a client's booking request.
type BookingRequestInput struct {
	ServiceID   string
	SlotID      string
	ClientName  string
	ClientEmail string
	Notes       string
}
