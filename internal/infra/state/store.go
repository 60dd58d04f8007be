// Package state implements the in-memory application state store and the
// provider that mounts it for the lifetime of the application.
package state

import (
	"slices"
	"sync"

	"boothly/internal/domain/entity"
	"boothly/internal/domain/repository"
)

// Store is the in-memory StateStore. Every mutation replaces the affected
// collection under the write lock, then notifies listeners synchronously
// once the lock is released.
type Store struct {
	mu sync.RWMutex

	user         entity.UserProfile
	portfolio    []entity.PortfolioImage
	services     []entity.Service
	bookings     []entity.Booking
	earnings     entity.EarningsSummary
	availability entity.Availability
	layout       entity.LayoutState

	listenersMu sync.Mutex
	listeners   map[uint64]repository.Listener
	nextID      uint64
}

var _ repository.StateStore = (*Store)(nil)

// New builds a store holding a private copy of seed.
func New(seed entity.Seed) *Store {
	return &Store{
		user:         seed.User,
		portfolio:    slices.Clone(seed.Portfolio),
		services:     slices.Clone(seed.Services),
		bookings:     slices.Clone(seed.Bookings),
		earnings:     seed.Earnings.Clone(),
		availability: seed.Availability.Clone(),
		listeners:    make(map[uint64]repository.Listener),
	}
}

func (s *Store) User() entity.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

func (s *Store) UpdateUser(patch entity.UserPatch) {
	s.mu.Lock()
	s.user = s.user.Apply(patch)
	s.mu.Unlock()

	s.notify(repository.CollectionUser, "UpdateUser")
}

func (s *Store) Portfolio() []entity.PortfolioImage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.portfolio)
}

func (s *Store) UpdatePortfolio(images []entity.PortfolioImage) {
	s.mu.Lock()
	s.portfolio = slices.Clone(images)
	s.mu.Unlock()

	s.notify(repository.CollectionPortfolio, "UpdatePortfolio")
}

func (s *Store) AddPortfolioImage(image entity.PortfolioImage) {
	s.mu.Lock()
	s.portfolio = append(slices.Clip(s.portfolio), image)
	s.mu.Unlock()

	s.notify(repository.CollectionPortfolio, "AddPortfolioImage")
}

func (s *Store) UpdatePortfolioFunc(edit repository.EditFunc[entity.PortfolioImage]) bool {
	if !editLocked(&s.mu, &s.portfolio, edit) {
		return false
	}
	s.notify(repository.CollectionPortfolio, "UpdatePortfolio")

	return true
}

func (s *Store) Services() []entity.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.services)
}

func (s *Store) UpdateServices(services []entity.Service) {
	s.mu.Lock()
	s.services = slices.Clone(services)
	s.mu.Unlock()

	s.notify(repository.CollectionServices, "UpdateServices")
}

func (s *Store) AddService(service entity.Service) {
	s.mu.Lock()
	s.services = append(slices.Clip(s.services), service)
	s.mu.Unlock()

	s.notify(repository.CollectionServices, "AddService")
}

func (s *Store) UpdateServicesFunc(edit repository.EditFunc[entity.Service]) bool {
	if !editLocked(&s.mu, &s.services, edit) {
		return false
	}
	s.notify(repository.CollectionServices, "UpdateServices")

	return true
}

func (s *Store) Bookings() []entity.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.bookings)
}

func (s *Store) UpdateBookings(bookings []entity.Booking) {
	s.mu.Lock()
	s.bookings = slices.Clone(bookings)
	s.mu.Unlock()

	s.notify(repository.CollectionBookings, "UpdateBookings")
}

func (s *Store) AddBooking(booking entity.Booking) {
	s.mu.Lock()
	s.bookings = append(slices.Clip(s.bookings), booking)
	s.mu.Unlock()

	s.notify(repository.CollectionBookings, "AddBooking")
}

func (s *Store) UpdateBookingsFunc(edit repository.EditFunc[entity.Booking]) bool {
	if !editLocked(&s.mu, &s.bookings, edit) {
		return false
	}
	s.notify(repository.CollectionBookings, "UpdateBookings")

	return true
}

// editLocked runs edit on a copy of *items and stores a copy of the result,
// all under mu.
func editLocked[T any](mu *sync.RWMutex, items *[]T, edit repository.EditFunc[T]) bool {
	mu.Lock()
	defer mu.Unlock()

	next, ok := edit(slices.Clone(*items))
	if !ok {
		return false
	}
	*items = slices.Clone(next)

	return true
}

func (s *Store) Earnings() entity.EarningsSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.earnings.Clone()
}

func (s *Store) Availability() entity.Availability {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.availability.Clone()
}

func (s *Store) UpdateAvailability(patch entity.AvailabilityPatch) {
	s.mu.Lock()
	s.availability = s.availability.Apply(patch)
	s.mu.Unlock()

	s.notify(repository.CollectionAvailability, "UpdateAvailability")
}

func (s *Store) SidebarCollapsed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.layout.SidebarCollapsed
}

func (s *Store) ToggleSidebar() {
	s.mu.Lock()
	s.layout.SidebarCollapsed = !s.layout.SidebarCollapsed
	s.mu.Unlock()

	s.notify(repository.CollectionLayout, "ToggleSidebar")
}

func (s *Store) SetSidebarCollapsed(collapsed bool) {
	s.mu.Lock()
	s.layout.SidebarCollapsed = collapsed
	s.mu.Unlock()

	s.notify(repository.CollectionLayout, "SetSidebarCollapsed")
}

// Subscribe registers listener until the returned func is called.
// Calling the func more than once is harmless.
func (s *Store) Subscribe(listener repository.Listener) func() {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

// notify runs listeners in subscription order, outside of every lock,
// so a listener may read the store or unsubscribe itself.
func (s *Store) notify(collection repository.Collection, operation string) {
	s.listenersMu.Lock()
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	listeners := make([]repository.Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.listenersMu.Unlock()

	change := repository.StateChange{Collection: collection, Operation: operation}
	for _, listener := range listeners {
		listener(change)
	}
}
