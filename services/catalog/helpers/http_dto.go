package helpers

// CoinRequest is the create/update payload for a catalog listing
type CoinRequest struct {
	Title           string `json:"title" binding:"required"`
	Price           string `json:"price" binding:"required"`
	Weight          string `json:"weight"`
	Year            string `json:"year"`
	Description     string `json:"description"`
	Image           string `json:"image"`
	HistoricalValue string `json:"historicalValue"`
}
