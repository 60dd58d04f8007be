package entity

import "time"

// Service is a bookable offering on the provider's price list.
type Service struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`    // Whole currency units, never negative.
	Duration    int     `json:"duration"` // Minutes, always positive.
}

// DurationValue converts the minute count into a time.Duration.
func (s Service) DurationValue() time.Duration {
	return time.Duration(s.Duration) * time.Minute
}
