package entity

// Seed is the initial value of every collection, supplied once when a store is built.
type Seed struct {
	User         UserProfile      `json:"user"`
	Portfolio    []PortfolioImage `json:"portfolio"`
	Services     []Service        `json:"services"`
	Bookings     []Booking        `json:"bookings"`
	Earnings     EarningsSummary  `json:"earnings"`
	Availability Availability     `json:"availability"`
}
