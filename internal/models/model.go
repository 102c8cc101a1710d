package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionLot represents a single coin lot open for bidding
type AuctionLot struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartingBid decimal.Decimal `json:"startingBid"`
	CurrentBid  decimal.Decimal `json:"currentBid"`
	BidCount    int             `json:"bidCount"`
	EndTime     time.Time       `json:"endTime"`
	Image       string          `json:"image,omitempty"`
	Bids        []Bid           `json:"bids"`
}

// Open reports whether the lot still accepts bids at the given time.
func (l AuctionLot) Open(now time.Time) bool {
	return now.Before(l.EndTime)
}

// Bid represents a single accepted bid on a lot.
// ID is a sequence number unique within the parent lot only.
type Bid struct {
	ID        int             `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Bidder    string          `json:"bidder"`
	Timestamp time.Time       `json:"timestamp"`
}

// Coin represents a catalog listing available for direct sale
type Coin struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Price           string `json:"price"`
	Weight          string `json:"weight"`
	Year            string `json:"year"`
	Description     string `json:"description"`
	Image           string `json:"image"`
	HistoricalValue string `json:"historicalValue,omitempty"`
}
