package entity

import (
	"strings"
	"time"
)

// BookingStatus is the review state of a booking. It drives filtering only;
// no transition between statuses is forbidden.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BookingStatuses lists every known status in display order.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}

	return false
}

const (
	// DateLayout is the layout of booking and slot dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the layout of booking and slot times.
	ClockLayout = "15:04"
)

// Booking is a client's reservation of one service.
type Booking struct {
	ID           string        `json:"id"`
	ClientName   string        `json:"clientName"`
	ClientEmail  string        `json:"clientEmail"`
	ClientAvatar string        `json:"clientAvatar"`
	ServiceID    string        `json:"serviceId"`
	ServiceName  string        `json:"serviceName"`
	Price        float64       `json:"price"`
	Date         string        `json:"date"` // YYYY-MM-DD
	Time         string        `json:"time"` // HH:MM
	Duration     int           `json:"duration"`
	Status       BookingStatus `json:"status"`
	Notes        string        `json:"notes"`
}

// StartsAt parses Date and Time in UTC. ok is false when either is malformed.
func (b Booking) StartsAt() (t time.Time, ok bool) {
	t, err := time.Parse(DateLayout+" "+ClockLayout, b.Date+" "+b.Time)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// BookingFilter selects bookings the way the bookings page does.
type BookingFilter struct {
	// Status restricts results to one status. Empty or "all" matches every status.
	Status string
	// Query is matched case-insensitively against client and service names.
	Query string
}

// Matches reports whether b passes the filter.
func (f BookingFilter) Matches(b Booking) bool {
	if f.Status != "" && f.Status != "all" && string(b.Status) != f.Status {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(b.ClientName), query) ||
		strings.Contains(strings.ToLower(b.ServiceName), query)
}
