package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "boothly/internal/delivery/context"
	"boothly/internal/domain/entity"
	domainerrors "boothly/internal/domain/errors"
	"boothly/internal/domain/repository"
	"boothly/internal/domain/service"
	"boothly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// publicPageService implements the PublicPageUsecase interface.
type publicPageService struct {
	stores    repository.StoreProvider
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewPublicPageService is the constructor for publicPageService.
func NewPublicPageService(
	stores repository.StoreProvider,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.PublicPageUsecase {
	return &publicPageService{
		stores:    stores,
		qrService: qrService,
		logger:    logger,
	}
}

func (srv *publicPageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolve opens the store and checks that username belongs to its provider.
func (srv *publicPageService) resolve(username string) (repository.StateStore, entity.UserProfile, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, entity.UserProfile{}, err
	}

	user := store.User()
	if user.Username != username {
		return nil, entity.UserProfile{}, errors.WithStack(domainerrors.ErrProviderNotFound.WithDetails("username " + username))
	}

	return store, user, nil
}

func (srv *publicPageService) GetPage(ctx context.Context, username string) (*usecase.PublicPage, error) {
	store, user, err := srv.resolve(username)
	if err != nil {
		return nil, err
	}

	all := store.Availability().TimeSlots
	slots := make([]entity.TimeSlot, 0, len(all))
	for _, slot := range all {
		if slot.Available {
			slots = append(slots, slot)
		}
	}

	return &usecase.PublicPage{
		Profile: usecase.PublicProfile{
			Name:         user.Name,
			Username:     user.Username,
			Bio:          user.Bio,
			ProfileImage: user.ProfileImage,
		},
		URL:            srv.qrService.BookingPageURL(user.Username),
		Portfolio:      store.Portfolio(),
		Services:       store.Services(),
		AvailableSlots: slots,
	}, nil
}

// RequestBooking records a client's request as a pending booking. The slot
// stays available; the provider confirms or cancels from the bookings page.
func (srv *publicPageService) RequestBooking(ctx context.Context, username string, input *usecase.BookingRequestInput) (*entity.Booking, error) {
	store, _, err := srv.resolve(username)
	if err != nil {
		return nil, err
	}

	services := store.Services()
	idx := slices.IndexFunc(services, func(s entity.Service) bool { return s.ID == input.ServiceID })
	if idx < 0 {
		return nil, errors.WithStack(domainerrors.ErrServiceNotFound.WithDetails("service " + input.ServiceID))
	}
	svc := services[idx]

	slot, ok := store.Availability().FindSlot(input.SlotID)
	if !ok || !slot.Available {
		return nil, errors.WithStack(domainerrors.ErrSlotUnavailable.WithDetails("slot " + input.SlotID))
	}

	booking := entity.Booking{
		ID:          uuid.NewString(),
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ServiceID:   svc.ID,
		ServiceName: svc.Title,
		Price:       svc.Price,
		Date:        slot.Date,
		Time:        slot.Time,
		Duration:    svc.Duration,
		Status:      entity.BookingStatusPending,
		Notes:       input.Notes,
	}
	store.AddBooking(booking)

	srv.log(ctx).Info("Booking requested",
		slog.String("booking_id", booking.ID),
		slog.String("service_id", svc.ID),
		slog.String("slot_id", slot.ID),
	)

	return &booking, nil
}

func (srv *publicPageService) GenerateQRCode(ctx context.Context, username string) ([]byte, error) {
	_, user, err := srv.resolve(username)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateBookingPageQR(user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate booking page QR code")
	}

	return png, nil
}
