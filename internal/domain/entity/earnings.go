package entity

import "slices"

// EarningsSummary is a display-only snapshot of the provider's income.
// It is never recomputed from bookings.
type EarningsSummary struct {
	CurrentMonth       float64       `json:"currentMonth"`
	LastMonth          float64       `json:"lastMonth"`
	ThisWeek           float64       `json:"thisWeek"`
	PendingPayouts     float64       `json:"pendingPayouts"`
	RecentTransactions []Transaction `json:"recentTransactions"`
}

// Transaction is a single payment listed in the earnings summary.
type Transaction struct {
	ID         string  `json:"id"`
	ClientName string  `json:"clientName"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Service    string  `json:"service"`
}

// Clone returns a copy that shares no slice with e.
// RecentTransactions is never nil in the copy.
func (e EarningsSummary) Clone() EarningsSummary {
	if e.RecentTransactions == nil {
		e.RecentTransactions = []Transaction{}
	} else {
		e.RecentTransactions = slices.Clone(e.RecentTransactions)
	}

	return e
}
