package state

import (
	"context"
	"log/slog"
	"sync"

	"boothly/internal/domain/entity"
	domainerrors "boothly/internal/domain/errors"
	"boothly/internal/domain/repository"
	"boothly/internal/errors"

	"go.uber.org/fx"
)

// Provider is the provisioning scope of the store: a store exists only
// between Mount and Unmount. Each Mount starts again from the seed.
type Provider struct {
	mu     sync.RWMutex
	seed   entity.Seed
	store  *Store
	logger *slog.Logger
}

var _ repository.StoreProvider = (*Provider)(nil)

// NewProvider creates an unmounted provider.
func NewProvider(seed entity.Seed, logger *slog.Logger) *Provider {
	return &Provider{
		seed:   seed,
		logger: logger,
	}
}

// Mount builds a fresh store from the seed and makes it current.
func (p *Provider) Mount() *Store {
	store := New(p.seed)

	p.mu.Lock()
	p.store = store
	p.mu.Unlock()

	p.logger.Info("State store mounted",
		slog.String("username", p.seed.User.Username),
		slog.Int("services", len(p.seed.Services)),
		slog.Int("bookings", len(p.seed.Bookings)),
	)

	return store
}

// Unmount drops the current store. Later reads fail until the next Mount.
func (p *Provider) Unmount() {
	p.mu.Lock()
	p.store = nil
	p.mu.Unlock()

	p.logger.Info("State store unmounted")
}

// Store returns the mounted store or ErrStoreNotProvisioned.
func (p *Provider) Store() (repository.StateStore, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.store == nil {
		return nil, errors.WithStack(domainerrors.ErrStoreNotProvisioned)
	}

	return p.store, nil
}

// MustStore is Store for callers that treat a missing store as a programming error.
func (p *Provider) MustStore() repository.StateStore {
	store, err := p.Store()
	if err != nil {
		panic(err)
	}

	return store
}

// LifecycleParams holds dependencies for RegisterLifecycle, injected by Fx.
type LifecycleParams struct {
	fx.In

	Lc       fx.Lifecycle
	Provider *Provider
	Logger   *slog.Logger
}

// RegisterLifecycle mounts the store when the application starts, subscribes
// a debug logger to its changes, and unmounts it on shutdown.
func RegisterLifecycle(params LifecycleParams) {
	var unsubscribe func()

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			store := params.Provider.Mount()
			unsubscribe = store.Subscribe(ChangeLogger(params.Logger))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if unsubscribe != nil {
				unsubscribe()
			}
			params.Provider.Unmount()

			return nil
		},
	})
}

// ChangeLogger returns a listener that logs every state change at debug level.
func ChangeLogger(logger *slog.Logger) repository.Listener {
	return func(change repository.StateChange) {
		logger.Debug("State changed",
			slog.String("collection", string(change.Collection)),
			slog.String("operation", change.Operation),
		)
	}
}
