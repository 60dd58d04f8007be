// Package impl contains the application-specific business rules implementations.
package impl

import (
	"boothly/internal/domain/repository"

	"github.com/pkg/errors"
)

// openStore fetches the mounted store. It fails with ErrStoreNotProvisioned
// before any state is read when the application is not running.
func openStore(provider repository.StoreProvider) (repository.StateStore, error) {
	store, err := provider.Store()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open state store")
	}

	return store, nil
}
