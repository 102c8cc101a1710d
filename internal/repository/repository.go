package repository

import (
	"time"

	model "coin-market/internal/models"
)

// AuctionStore defines lot storage for the auction system.
// Update is the single mutation point: fn runs under the lot's write lock,
// and an error from fn leaves the stored lot untouched.
type AuctionStore interface {
	ListActive(now time.Time) ([]model.AuctionLot, error)
	ListAll() ([]model.AuctionLot, error)
	FindByID(id int) (model.AuctionLot, error)
	Append(lot model.AuctionLot) (model.AuctionLot, error)
	Update(id int, fn func(*model.AuctionLot) error) (model.AuctionLot, error)
}

// CoinStore defines catalog storage for coin listings.
type CoinStore interface {
	List() ([]model.Coin, error)
	FindByID(id int) (model.Coin, error)
	Create(coin model.Coin) (model.Coin, error)
	Update(id int, coin model.Coin) (model.Coin, error)
	Delete(id int) error
}
