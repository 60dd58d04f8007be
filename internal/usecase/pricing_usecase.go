package usecase

import (
	"context"

	"boothly/internal/domain/entity"
)

// PricingUsecase defines the operations of the pricing page.
type PricingUsecase interface {
	ListServices(ctx context.Context) ([]entity.Service, error)
	ReplaceServices(ctx context.Context, services []entity.Service) ([]entity.Service, error)

	// AddService appends a service, generating an id when none is given.
	AddService(ctx context.Context, input *ServiceInput) (*entity.Service, error)

	// UpdateService rewrites every editable field of one service.
	UpdateService(ctx context.Context, id string, input *ServiceInput) (*entity.Service, error)

	DeleteService(ctx context.Context, id string) error
}

// ServiceInput defines the editable fields of a service. ID is only read by AddService.
type ServiceInput struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Duration    int
}
