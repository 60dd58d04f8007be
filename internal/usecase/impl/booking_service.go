package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	deliverycontext "boothly/internal/delivery/context"
	"boothly/internal/domain/constants"
	"boothly/internal/domain/entity"
	domainerrors "boothly/internal/domain/errors"
	"boothly/internal/domain/repository"
	"boothly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	stores repository.StoreProvider
	logger *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(stores repository.StoreProvider, logger *slog.Logger) usecase.BookingUsecase {
	return &bookingService{
		stores: stores,
		logger: logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBookings returns the bookings passing filter, in store order.
func (srv *bookingService) ListBookings(ctx context.Context, filter entity.BookingFilter) ([]entity.Booking, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	bookings := store.Bookings()
	matched := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Matches(b) {
			matched = append(matched, b)
		}
	}

	return matched, nil
}

func (srv *bookingService) ReplaceBookings(ctx context.Context, bookings []entity.Booking) ([]entity.Booking, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Replacing bookings", slog.Int("count", len(bookings)))
	store.UpdateBookings(bookings)

	return store.Bookings(), nil
}

func (srv *bookingService) AddBooking(ctx context.Context, input *usecase.AddBookingInput) (*entity.Booking, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	booking := entity.Booking{
		ID:           input.ID,
		ClientName:   input.ClientName,
		ClientEmail:  input.ClientEmail,
		ClientAvatar: input.ClientAvatar,
		ServiceID:    input.ServiceID,
		ServiceName:  input.ServiceName,
		Price:        input.Price,
		Date:         input.Date,
		Time:         input.Time,
		Duration:     input.Duration,
		Status:       input.Status,
		Notes:        input.Notes,
	}
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.Status == "" {
		booking.Status = entity.BookingStatusPending
	}

	store.AddBooking(booking)
	srv.log(ctx).Info("Booking added",
		slog.String("booking_id", booking.ID),
		slog.String("status", string(booking.Status)),
	)

	return &booking, nil
}

// UpdateStatus maps over the bookings and writes them back whole.
func (srv *bookingService) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	var previous entity.BookingStatus
	var updated entity.Booking
	found := store.UpdateBookingsFunc(func(bookings []entity.Booking) ([]entity.Booking, bool) {
		idx := slices.IndexFunc(bookings, func(b entity.Booking) bool { return b.ID == id })
		if idx < 0 {
			return nil, false
		}
		previous = bookings[idx].Status
		bookings[idx].Status = status
		updated = bookings[idx]

		return bookings, true
	})
	if !found {
		return nil, errors.WithStack(domainerrors.ErrBookingNotFound.WithDetails("booking " + id))
	}

	srv.log(ctx).Info("Booking status changed",
		slog.String("booking_id", id),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)

	return &updated, nil
}

// GetDashboard counts bookings per status and lists the earliest confirmed ones.
func (srv *bookingService) GetDashboard(ctx context.Context) (*usecase.DashboardSummary, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	bookings := store.Bookings()
	counts := make(map[entity.BookingStatus]int, len(entity.BookingStatuses))
	for _, status := range entity.BookingStatuses {
		counts[status] = 0
	}

	upcoming := make([]entity.Booking, 0)
	for _, b := range bookings {
		counts[b.Status]++
		if b.Status == entity.BookingStatusConfirmed {
			upcoming = append(upcoming, b)
		}
	}

	// Stable, so bookings at the same start keep store order
	slices.SortStableFunc(upcoming, compareStart)
	if len(upcoming) > constants.UpcomingBookingsLimit {
		upcoming = upcoming[:constants.UpcomingBookingsLimit]
	}

	return &usecase.DashboardSummary{
		TotalBookings:        len(bookings),
		StatusCounts:         counts,
		UpcomingBookings:     upcoming,
		CurrentMonthEarnings: store.Earnings().CurrentMonth,
	}, nil
}

// compareStart orders bookings by start time. Bookings whose date or time
// does not parse sort after the others, by their raw text.
func compareStart(a, b entity.Booking) int {
	at, aok := a.StartsAt()
	bt, bok := b.StartsAt()
	switch {
	case aok && bok:
		return at.Compare(bt)
	case aok:
		return -1
	case bok:
		return 1
	}

	return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.Time, b.Time))
}
