package helpers

import "github.com/shopspring/decimal"

// Action tags accepted by POST /api/auctions
const (
	ActionPlaceBid   = "place_bid"
	ActionAddAuction = "add_auction"
)

// ActionRequest is the tagged union posted to /api/auctions. Which fields
// matter depends on Action; the handler validates per tag.
type ActionRequest struct {
	Action string `json:"action" binding:"required"`

	// place_bid
	AuctionID  int             `json:"auctionId"`
	BidAmount  decimal.Decimal `json:"bidAmount"`
	BidderName string          `json:"bidderName"`

	// add_auction
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartingBid decimal.Decimal `json:"startingBid"`
	Duration    int             `json:"duration"` // days the lot stays open
	Image       string          `json:"image"`
}
