package usecase

import (
	"context"

	"boothly/internal/domain/entity"
)

// EarningsUsecase exposes the read-only earnings summary.
type EarningsUsecase interface {
	GetEarnings(ctx context.Context) (*entity.EarningsSummary, error)
}
