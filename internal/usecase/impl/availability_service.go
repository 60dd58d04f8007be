package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "boothly/internal/delivery/context"
	"boothly/internal/domain/constants"
	"boothly/internal/domain/entity"
	"boothly/internal/domain/repository"
	"boothly/internal/usecase"
)

// availabilityService implements the AvailabilityUsecase interface.
type availabilityService struct {
	stores repository.StoreProvider
	logger *slog.Logger
	now    func() time.Time
}

// NewAvailabilityService is the constructor for availabilityService.
func NewAvailabilityService(stores repository.StoreProvider, logger *slog.Logger) usecase.AvailabilityUsecase {
	return &availabilityService{
		stores: stores,
		logger: logger,
		now:    time.Now,
	}
}

func (srv *availabilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *availabilityService) GetAvailability(ctx context.Context) (*entity.Availability, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	availability := store.Availability()

	return &availability, nil
}

func (srv *availabilityService) UpdateAvailability(ctx context.Context, patch entity.AvailabilityPatch) (*entity.Availability, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Updating availability",
		slog.Bool("weekly_schedule", patch.WeeklySchedule != nil),
		slog.Bool("time_slots", patch.TimeSlots != nil),
		slog.Bool("settings", patch.Settings != nil),
	)
	store.UpdateAvailability(patch)
	availability := store.Availability()

	return &availability, nil
}

// ToggleBlock edits a draft of the schedule and writes back only the schedule.
func (srv *availabilityService) ToggleBlock(ctx context.Context, day entity.Weekday, block entity.TimeBlock) (*entity.WeeklySchedule, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	draft := store.Availability().WeeklySchedule.Toggle(day, block)
	store.UpdateAvailability(entity.AvailabilityPatch{WeeklySchedule: &draft})

	srv.log(ctx).Debug("Weekly block toggled",
		slog.String("day", string(day)),
		slog.String("block", string(block)),
	)

	schedule := store.Availability().WeeklySchedule

	return &schedule, nil
}

func (srv *availabilityService) GroupSlotsByDay(ctx context.Context) ([]usecase.DaySlots, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	return groupSlotsByDay(store.Availability().TimeSlots), nil
}

func groupSlotsByDay(slots []entity.TimeSlot) []usecase.DaySlots {
	groups := make([]usecase.DaySlots, 0)
	index := make(map[string]int)
	for _, slot := range slots {
		i, ok := index[slot.Day]
		if !ok {
			i = len(groups)
			index[slot.Day] = i
			groups = append(groups, usecase.DaySlots{Day: slot.Day})
		}
		groups[i].Slots = append(groups[i].Slots, slot)
	}

	return groups
}

// Setup turns the onboarding form into a full availability: each working day
// is open in every block, and the coming week gets generated slots.
func (srv *availabilityService) Setup(ctx context.Context, input *usecase.AvailabilitySetupInput) (*entity.Availability, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	schedule := setupSchedule(input.WorkingDays)
	slots := setupSlots(srv.now(), input)
	settings := entity.AvailabilitySettings{
		BufferMinutes:         input.BufferMinutes,
		MaxAdvanceBookingDays: input.MaxAdvanceBookingDays,
		AllowSameDay:          input.AllowSameDay,
	}

	store.UpdateAvailability(entity.AvailabilityPatch{
		WeeklySchedule: &schedule,
		TimeSlots:      &slots,
		Settings:       &settings,
	})

	srv.log(ctx).Info("Availability set up",
		slog.Int("working_days", len(input.WorkingDays)),
		slog.Int("time_slots", len(slots)),
	)

	availability := store.Availability()

	return &availability, nil
}

func setupSchedule(workingDays []entity.Weekday) entity.WeeklySchedule {
	var schedule entity.WeeklySchedule
	for _, day := range workingDays {
		schedule = schedule.WithDay(day, entity.DayAvailability{Morning: true, Afternoon: true, Evening: true})
	}

	return schedule
}

func setupSlots(from time.Time, input *usecase.AvailabilitySetupInput) []entity.TimeSlot {
	slots := make([]entity.TimeSlot, 0)
	for i := range constants.OnboardingSlotDays {
		date := from.AddDate(0, 0, i)
		day := entity.Weekday(strings.ToLower(date.Weekday().String()))
		if !slices.Contains(input.WorkingDays, day) {
			continue
		}

		dateStr := date.Format(entity.DateLayout)
		newSlot := func(block entity.TimeBlock, at string) entity.TimeSlot {
			return entity.TimeSlot{
				ID:        "ts-" + dateStr + "-" + string(block),
				Day:       string(day),
				Date:      dateStr,
				Time:      at,
				Available: true,
			}
		}

		slots = append(slots,
			newSlot(entity.Morning, input.StartTime),
			newSlot(entity.Afternoon, constants.AfternoonSlotTime),
		)
		// HH:MM compares correctly as a string
		if input.EndTime > constants.EveningSlotTime {
			slots = append(slots, newSlot(entity.Evening, constants.EveningSlotTime))
		}
	}

	return slots
}
