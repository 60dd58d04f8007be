package qrcode

import (
	"net/url"
	"strings"

	"boothly/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// bookingPagePath is the public route prefix of booking pages.
const bookingPagePath = "/book/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// BookingPageURL returns the public booking page address of a username
func (s *qrcodeService) BookingPageURL(username string) string {
	return s.baseURL + bookingPagePath + url.PathEscape(username)
}

// GenerateBookingPageQR encodes the booking page URL as a PNG QR code
func (s *qrcodeService) GenerateBookingPageQR(username string) ([]byte, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.New("username is required")
	}

	qrCode, err := qrcode.New(s.BookingPageURL(username), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
