package impl

import (
	"context"

	"boothly/internal/domain/entity"
	"boothly/internal/domain/repository"
	"boothly/internal/usecase"
)

// earningsService implements the EarningsUsecase interface.
type earningsService struct {
	stores repository.StoreProvider
}

// NewEarningsService is the constructor for earningsService.
func NewEarningsService(stores repository.StoreProvider) usecase.EarningsUsecase {
	return &earningsService{stores: stores}
}

// GetEarnings returns the display-only earnings summary.
func (srv *earningsService) GetEarnings(ctx context.Context) (*entity.EarningsSummary, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	earnings := store.Earnings()

	return &earnings, nil
}
