package entity

import (
	"slices"
	"strings"
)

// Weekday names a day of the weekly schedule.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the schedule days from Monday to Sunday.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday accepts a day name in any letter case.
func ParseWeekday(s string) (Weekday, bool) {
	day := Weekday(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Weekdays {
		if day == known {
			return day, true
		}
	}

	return "", false
}

// TimeBlock is one of the three coarse parts of a working day.
type TimeBlock string

const (
	Morning   TimeBlock = "morning"   // 9am-12pm
	Afternoon TimeBlock = "afternoon" // 1pm-5pm
	Evening   TimeBlock = "evening"   // 6pm-9pm
)

// TimeBlocks lists the blocks in day order.
var TimeBlocks = []TimeBlock{Morning, Afternoon, Evening}

// ParseTimeBlock accepts a block name in any letter case.
func ParseTimeBlock(s string) (TimeBlock, bool) {
	block := TimeBlock(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TimeBlocks {
		if block == known {
			return block, true
		}
	}

	return "", false
}

// DayAvailability says which blocks of a day are open.
type DayAvailability struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
	Evening   bool `json:"evening"`
}

// Block returns the flag of one block.
func (d DayAvailability) Block(block TimeBlock) bool {
	switch block {
	case Morning:
		return d.Morning
	case Afternoon:
		return d.Afternoon
	case Evening:
		return d.Evening
	}

	return false
}

// WithBlock returns a copy of d with one block set to open.
func (d DayAvailability) WithBlock(block TimeBlock, open bool) DayAvailability {
	switch block {
	case Morning:
		d.Morning = open
	case Afternoon:
		d.Afternoon = open
	case Evening:
		d.Evening = open
	}

	return d
}

// WeeklySchedule holds one DayAvailability per weekday. Every day is a field,
// so a schedule can never be missing a day.
type WeeklySchedule struct {
	Monday    DayAvailability `json:"monday"`
	Tuesday   DayAvailability `json:"tuesday"`
	Wednesday DayAvailability `json:"wednesday"`
	Thursday  DayAvailability `json:"thursday"`
	Friday    DayAvailability `json:"friday"`
	Saturday  DayAvailability `json:"saturday"`
	Sunday    DayAvailability `json:"sunday"`
}

func (w *WeeklySchedule) day(day Weekday) *DayAvailability {
	switch day {
	case Monday:
		return &w.Monday
	case Tuesday:
		return &w.Tuesday
	case Wednesday:
		return &w.Wednesday
	case Thursday:
		return &w.Thursday
	case Friday:
		return &w.Friday
	case Saturday:
		return &w.Saturday
	case Sunday:
		return &w.Sunday
	}

	return nil
}

// Day returns the availability of one weekday.
func (w WeeklySchedule) Day(day Weekday) (DayAvailability, bool) {
	d := w.day(day)
	if d == nil {
		return DayAvailability{}, false
	}

	return *d, true
}

// WithDay returns a copy of w with one weekday replaced.
func (w WeeklySchedule) WithDay(day Weekday, availability DayAvailability) WeeklySchedule {
	if d := w.day(day); d != nil {
		*d = availability
	}

	return w
}

// Toggle returns a copy of w with one block of one day flipped.
func (w WeeklySchedule) Toggle(day Weekday, block TimeBlock) WeeklySchedule {
	current, ok := w.Day(day)
	if !ok {
		return w
	}

	return w.WithDay(day, current.WithBlock(block, !current.Block(block)))
}

// TimeSlot is a single bookable (day, date, time) unit.
type TimeSlot struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
}

// AvailabilitySettings are the provider's booking rules.
type AvailabilitySettings struct {
	BufferMinutes         int  `json:"bufferMinutes"`
	MaxAdvanceBookingDays int  `json:"maxAdvanceBookingDays"`
	AllowSameDay          bool `json:"allowSameDay"`
}

// Availability is the full availability state of the provider.
// Settings stays nil until the provider saves booking rules.
type Availability struct {
	WeeklySchedule WeeklySchedule        `json:"weeklySchedule"`
	TimeSlots      []TimeSlot            `json:"timeSlots"`
	Settings       *AvailabilitySettings `json:"settings,omitempty"`
}

// AvailabilityPatch replaces each non-nil part of an Availability wholesale.
// Nothing is merged below the first level.
type AvailabilityPatch struct {
	WeeklySchedule *WeeklySchedule
	TimeSlots      *[]TimeSlot
	Settings       *AvailabilitySettings
}

// Apply returns a copy of a with the parts present in p replaced.
func (a Availability) Apply(p AvailabilityPatch) Availability {
	out := a.Clone()
	if p.WeeklySchedule != nil {
		out.WeeklySchedule = *p.WeeklySchedule
	}
	if p.TimeSlots != nil {
		out.TimeSlots = cloneSlots(*p.TimeSlots)
	}
	if p.Settings != nil {
		settings := *p.Settings
		out.Settings = &settings
	}

	return out
}

// Clone returns a copy that shares no slice or pointer with a.
// TimeSlots is never nil in the copy.
func (a Availability) Clone() Availability {
	a.TimeSlots = cloneSlots(a.TimeSlots)
	if a.Settings != nil {
		settings := *a.Settings
		a.Settings = &settings
	}

	return a
}

// FindSlot returns the slot with the given id.
func (a Availability) FindSlot(id string) (TimeSlot, bool) {
	for _, slot := range a.TimeSlots {
		if slot.ID == id {
			return slot, true
		}
	}

	return TimeSlot{}, false
}

// cloneSlots copies slots into a non-nil slice, so an empty list encodes as [].
func cloneSlots(slots []TimeSlot) []TimeSlot {
	if slots == nil {
		return []TimeSlot{}
	}

	return slices.Clone(slots)
}
