package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "boothly/internal/delivery/context"
	"boothly/internal/domain/entity"
	domainerrors "boothly/internal/domain/errors"
	"boothly/internal/domain/repository"
	"boothly/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	stores repository.StoreProvider
	logger *slog.Logger
	now    func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	stores repository.StoreProvider,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		stores: stores,
		logger: logger,
		now:    time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the provider profile.
func (srv *profileService) GetProfile(ctx context.Context) (*entity.UserProfile, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	user := store.User()

	return &user, nil
}

// UpdateProfile merges the present fields of input into the profile.
// An input without any field is rejected.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	patch := input.Patch()
	if patch.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("no profile field to update"))
	}

	srv.log(ctx).Info("Updating profile")

	store.UpdateUser(patch)
	user := store.User()

	return &user, nil
}

// CompleteOnboarding stamps createdAt the way the onboarding flow's last step does.
func (srv *profileService) CompleteOnboarding(ctx context.Context) (*entity.UserProfile, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	createdAt := srv.now().UTC()
	store.UpdateUser(entity.UserPatch{CreatedAt: &createdAt})

	user := store.User()
	srv.log(ctx).Info("Onboarding completed", slog.String("username", user.Username))

	return &user, nil
}
