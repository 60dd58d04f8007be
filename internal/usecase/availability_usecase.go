package usecase

import (
	"context"

	"boothly/internal/domain/entity"
)

// AvailabilityUsecase defines the operations of the availability page and onboarding step.
type AvailabilityUsecase interface {
	GetAvailability(ctx context.Context) (*entity.Availability, error)

	// UpdateAvailability replaces every part present in patch.
	UpdateAvailability(ctx context.Context, patch entity.AvailabilityPatch) (*entity.Availability, error)

	// ToggleBlock flips one block of one weekday.
	ToggleBlock(ctx context.Context, day entity.Weekday, block entity.TimeBlock) (*entity.WeeklySchedule, error)

	// GroupSlotsByDay lists the time slots per day, days in first-seen order.
	GroupSlotsByDay(ctx context.Context) ([]DaySlots, error)

	// Setup derives the whole availability from the onboarding form and writes it at once.
	Setup(ctx context.Context, input *AvailabilitySetupInput) (*entity.Availability, error)
}

// DaySlots is the time slots sharing one day label.
type DaySlots struct {
	Day   string            `json:"day"`
	Slots []entity.TimeSlot `json:"slots"`
}

// AvailabilitySetupInput is the onboarding availability form.
type AvailabilitySetupInput struct {
	WorkingDays           []entity.Weekday
	StartTime             string // HH:MM
	EndTime               string // HH:MM
	BufferMinutes         int
	MaxAdvanceBookingDays int
	AllowSameDay          bool
}
