package usecase

import (
	"context"

	"boothly/internal/domain/entity"
)

// PortfolioUsecase defines the portfolio page operations.
type PortfolioUsecase interface {
	ListImages(ctx context.Context) ([]entity.PortfolioImage, error)

	// ReplaceImages overwrites the portfolio, as the onboarding flow does.
	ReplaceImages(ctx context.Context, images []entity.PortfolioImage) ([]entity.PortfolioImage, error)

	// AddImage appends an image, generating an id when none is given.
	AddImage(ctx context.Context, input *AddPortfolioImageInput) (*entity.PortfolioImage, error)

	// RemoveImage drops the image with the given id.
	RemoveImage(ctx context.Context, id string) error
}

// AddPortfolioImageInput defines the data of a new portfolio image.
type AddPortfolioImageInput struct {
	ID          string
	URL         string
	Title       string
	Description string
}
