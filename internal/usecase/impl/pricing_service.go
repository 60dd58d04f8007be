package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "boothly/internal/delivery/context"
	"boothly/internal/domain/entity"
	domainerrors "boothly/internal/domain/errors"
	"boothly/internal/domain/repository"
	"boothly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pricingService implements the PricingUsecase interface.
type pricingService struct {
	stores repository.StoreProvider
	logger *slog.Logger
}

// NewPricingService is the constructor for pricingService.
func NewPricingService(stores repository.StoreProvider, logger *slog.Logger) usecase.PricingUsecase {
	return &pricingService{
		stores: stores,
		logger: logger,
	}
}

func (srv *pricingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *pricingService) ListServices(ctx context.Context) ([]entity.Service, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	return store.Services(), nil
}

func (srv *pricingService) ReplaceServices(ctx context.Context, services []entity.Service) ([]entity.Service, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Replacing services", slog.Int("count", len(services)))
	store.UpdateServices(services)

	return store.Services(), nil
}

func (srv *pricingService) AddService(ctx context.Context, input *usecase.ServiceInput) (*entity.Service, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	service := entity.Service{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
	}
	if service.ID == "" {
		service.ID = uuid.NewString()
	}

	store.AddService(service)
	srv.log(ctx).Info("Service added", slog.String("service_id", service.ID))

	return &service, nil
}

// UpdateService maps over the list and writes it back whole.
func (srv *pricingService) UpdateService(ctx context.Context, id string, input *usecase.ServiceInput) (*entity.Service, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	updated := entity.Service{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
	}
	found := store.UpdateServicesFunc(func(services []entity.Service) ([]entity.Service, bool) {
		idx := slices.IndexFunc(services, func(s entity.Service) bool { return s.ID == id })
		if idx < 0 {
			return nil, false
		}
		services[idx] = updated

		return services, true
	})
	if !found {
		return nil, errors.WithStack(domainerrors.ErrServiceNotFound.WithDetails("service " + id))
	}
	srv.log(ctx).Info("Service updated", slog.String("service_id", id))

	return &updated, nil
}

func (srv *pricingService) DeleteService(ctx context.Context, id string) error {
	store, err := openStore(srv.stores)
	if err != nil {
		return err
	}

	found := store.UpdateServicesFunc(func(services []entity.Service) ([]entity.Service, bool) {
		remaining := slices.DeleteFunc(services, func(s entity.Service) bool { return s.ID == id })
		return remaining, len(remaining) < len(services)
	})
	if !found {
		return errors.WithStack(domainerrors.ErrServiceNotFound.WithDetails("service " + id))
	}

	srv.log(ctx).Info("Service deleted", slog.String("service_id", id))

	return nil
}
