package auction

import (
	"fmt"
	"time"

	"coin-market/internal/marketerrors"
	"coin-market/internal/models"
	"coin-market/internal/repository"

	"github.com/shopspring/decimal"
)

// Service implements the bid-acceptance flow: validate a proposed bid
// against the lot's expiry and current high bid, then append it to the
// ledger. Validation and append run inside the store's per-lot critical
// section so concurrent bids are first-committed-wins.
type Service struct {
	store repository.AuctionStore
	now   func() time.Time
}

// NewService creates a new auction Service instance
func NewService(store repository.AuctionStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// PlaceBid validates and records a bid on a lot, returning the mutated lot.
func (s *Service) PlaceBid(lotID int, bidder string, amount decimal.Decimal) (models.AuctionLot, error) {
	if bidder == "" {
		return models.AuctionLot{}, fmt.Errorf("service: %w - missing bidder name", marketerrors.ErrInvalidBid)
	}
	if amount.Sign() <= 0 {
		return models.AuctionLot{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidBid)
	}

	now := s.now().UTC()

	lot, err := s.store.Update(lotID, func(l *models.AuctionLot) error {
		if err := validateBid(l, amount, now); err != nil {
			return err
		}
		appendBid(l, bidder, amount, now)
		return nil
	})
	if err != nil {
		return models.AuctionLot{}, fmt.Errorf("service: failed to place bid on lot %d: %w", lotID, err)
	}

	return lot, nil
}

// validateBid checks business rules in order: expiry first, then amount.
// The not-found case never reaches here; the store reports it.
func validateBid(lot *models.AuctionLot, amount decimal.Decimal, now time.Time) error {
	if !lot.Open(now) {
		return fmt.Errorf("lot %d closed at %s: %w", lot.ID, lot.EndTime.Format(time.RFC3339), marketerrors.ErrLotExpired)
	}
	if amount.Cmp(lot.CurrentBid) <= 0 {
		return fmt.Errorf("current bid is %s: %w", lot.CurrentBid.String(), marketerrors.ErrBidTooLow)
	}
	return nil
}

// appendBid applies an accepted bid: next sequence number, new high bid,
// bidder count recomputed from the ledger length.
func appendBid(lot *models.AuctionLot, bidder string, amount decimal.Decimal, now time.Time) {
	lot.Bids = append(lot.Bids, models.Bid{
		ID:        len(lot.Bids) + 1,
		Amount:    amount,
		Bidder:    bidder,
		Timestamp: now,
	})
	lot.CurrentBid = amount
	lot.BidCount = len(lot.Bids)
}

// AddLot creates a new lot that starts accepting bids immediately and
// closes after durationDays.
func (s *Service) AddLot(title, description, image string, startingBid decimal.Decimal, durationDays int) (models.AuctionLot, error) {
	if title == "" {
		return models.AuctionLot{}, fmt.Errorf("service: %w - missing title", marketerrors.ErrInvalidLot)
	}
	if startingBid.Sign() <= 0 {
		return models.AuctionLot{}, fmt.Errorf("service: %w - non-positive starting bid", marketerrors.ErrInvalidLot)
	}
	if durationDays <= 0 {
		return models.AuctionLot{}, fmt.Errorf("service: %w - non-positive duration", marketerrors.ErrInvalidLot)
	}

	lot := models.AuctionLot{
		Title:       title,
		Description: description,
		Image:       image,
		StartingBid: startingBid,
		EndTime:     s.now().UTC().Add(time.Duration(durationDays) * 24 * time.Hour),
	}

	created, err := s.store.Append(lot)
	if err != nil {
		return models.AuctionLot{}, fmt.Errorf("service: failed to add lot: %w", err)
	}

	return created, nil
}

// ListActive returns all lots still accepting bids.
func (s *Service) ListActive() ([]models.AuctionLot, error) {
	lots, err := s.store.ListActive(s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active lots: %w", err)
	}
	return lots, nil
}

// GetLot returns a single lot regardless of its state.
func (s *Service) GetLot(lotID int) (models.AuctionLot, error) {
	lot, err := s.store.FindByID(lotID)
	if err != nil {
		return models.AuctionLot{}, fmt.Errorf("service: failed to get lot %d: %w", lotID, err)
	}
	return lot, nil
}
