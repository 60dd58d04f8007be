// Package repository defines the interfaces for the state layer.
// These interfaces act as a contract between the application layer and the infrastructure layer.
package repository

import "boothly/internal/domain/entity"

// Collection names one part of the application state.
type Collection string

const (
	CollectionUser         Collection = "user"
	CollectionPortfolio    Collection = "portfolio"
	CollectionServices     Collection = "services"
	CollectionBookings     Collection = "bookings"
	CollectionEarnings     Collection = "earnings"
	CollectionAvailability Collection = "availability"
	CollectionLayout       Collection = "layout"
)

// StateChange describes one completed mutation.
type StateChange struct {
	Collection Collection
	Operation  string // Name of the store operation, e.g. "AddBooking".
}

// Listener is called synchronously after every mutation of a store.
type Listener func(change StateChange)

// EditFunc receives a copy of a collection and returns its replacement.
// Returning false leaves the collection untouched and notifies nobody.
// It runs under the store's write lock and must not call the store.
type EditFunc[T any] func(items []T) ([]T, bool)

// StateStore is the single source of truth for the dashboard.
// Reads return copies; no caller can alias authoritative state.
// Mutations never fail and trust their input.
type StateStore interface {
	// User returns the provider profile.
	User() entity.UserProfile

	// UpdateUser shallow-merges patch into the profile. Fields absent from patch are kept.
	UpdateUser(patch entity.UserPatch)

	Portfolio() []entity.PortfolioImage

	// UpdatePortfolio replaces the whole portfolio.
	UpdatePortfolio(images []entity.PortfolioImage)

	// AddPortfolioImage appends one image. The caller guarantees id uniqueness.
	AddPortfolioImage(image entity.PortfolioImage)

	// UpdatePortfolioFunc replaces the portfolio with the result of edit in
	// one step, so no concurrent write lands between the read and the write.
	UpdatePortfolioFunc(edit EditFunc[entity.PortfolioImage]) bool

	Services() []entity.Service
	UpdateServices(services []entity.Service)
	AddService(service entity.Service)
	UpdateServicesFunc(edit EditFunc[entity.Service]) bool

	Bookings() []entity.Booking

	// UpdateBookings replaces every booking. Any status value is accepted.
	UpdateBookings(bookings []entity.Booking)
	AddBooking(booking entity.Booking)
	UpdateBookingsFunc(edit EditFunc[entity.Booking]) bool

	// Earnings is read-only.
	Earnings() entity.EarningsSummary

	Availability() entity.Availability

	// UpdateAvailability replaces each part present in patch wholesale.
	UpdateAvailability(patch entity.AvailabilityPatch)

	SidebarCollapsed() bool
	ToggleSidebar()
	SetSidebarCollapsed(collapsed bool)

	// Subscribe registers a listener and returns the func that removes it.
	Subscribe(listener Listener) (unsubscribe func())
}

// StoreProvider hands out the store mounted for the running application.
type StoreProvider interface {
	// Store returns the mounted store, or an error wrapping
	// errors.ErrStoreNotProvisioned when none is mounted.
	Store() (StateStore, error)
}
