// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

const (
	// UpcomingBookingsLimit caps the dashboard's upcoming bookings list.
	UpcomingBookingsLimit = 10

	// OnboardingSlotDays is how many days of slots the availability setup generates.
	OnboardingSlotDays = 7

	// AfternoonSlotTime and EveningSlotTime are the fixed starts of generated slots.
	AfternoonSlotTime = "12:00"
	EveningSlotTime   = "17:00"
)
