package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// BookingPageURL returns the public booking page address of a username
	BookingPageURL(username string) string

	// GenerateBookingPageQR generates a PNG QR code pointing at a username's booking page
	GenerateBookingPageQR(username string) ([]byte, error)
}
