// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"boothly/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.UserProfile, error)
	// CompleteOnboarding stamps the profile's createdAt with the current time.
	CompleteOnboarding(ctx context.Context) (*entity.UserProfile, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the profile fields a provider may edit.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name         *string
	Username     *string
	Email        *string
	Bio          *string
	Phone        *string
	ProfileImage *string
}

// Patch converts the input into a store patch.
func (in *UpdateProfileInput) Patch() entity.UserPatch {
	return entity.UserPatch{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		Bio:          in.Bio,
		Phone:        in.Phone,
		ProfileImage: in.ProfileImage,
	}
}
