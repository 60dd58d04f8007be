package entity

// PortfolioImage is one piece of work displayed on the provider's portfolio.
type PortfolioImage struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
