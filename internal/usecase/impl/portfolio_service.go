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

// portfolioService implements the PortfolioUsecase interface.
type portfolioService struct {
	stores repository.StoreProvider
	logger *slog.Logger
}

// NewPortfolioService is the constructor for portfolioService.
func NewPortfolioService(stores repository.StoreProvider, logger *slog.Logger) usecase.PortfolioUsecase {
	return &portfolioService{
		stores: stores,
		logger: logger,
	}
}

func (srv *portfolioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *portfolioService) ListImages(ctx context.Context) ([]entity.PortfolioImage, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	return store.Portfolio(), nil
}

func (srv *portfolioService) ReplaceImages(ctx context.Context, images []entity.PortfolioImage) ([]entity.PortfolioImage, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Replacing portfolio", slog.Int("count", len(images)))
	store.UpdatePortfolio(images)

	return store.Portfolio(), nil
}

func (srv *portfolioService) AddImage(ctx context.Context, input *usecase.AddPortfolioImageInput) (*entity.PortfolioImage, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	image := entity.PortfolioImage{
		ID:          input.ID,
		URL:         input.URL,
		Title:       input.Title,
		Description: input.Description,
	}
	if image.ID == "" {
		image.ID = uuid.NewString()
	}

	store.AddPortfolioImage(image)
	srv.log(ctx).Info("Portfolio image added", slog.String("image_id", image.ID))

	return &image, nil
}

func (srv *portfolioService) RemoveImage(ctx context.Context, id string) error {
	store, err := openStore(srv.stores)
	if err != nil {
		return err
	}

	found := store.UpdatePortfolioFunc(func(images []entity.PortfolioImage) ([]entity.PortfolioImage, bool) {
		remaining := slices.DeleteFunc(images, func(image entity.PortfolioImage) bool {
			return image.ID == id
		})
		return remaining, len(remaining) < len(images)
	})
	if !found {
		return errors.WithStack(domainerrors.ErrPortfolioImageNotFound.WithDetails("image " + id))
	}

	srv.log(ctx).Info("Portfolio image removed", slog.String("image_id", id))

	return nil
}
