package repository

import (
	"errors"
	"fmt"
	"time"

	"coin-market/internal/marketerrors"
	model "coin-market/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MySQLAuctionStore is a durable AuctionStore. Bid acceptance runs inside a
// transaction with a SELECT ... FOR UPDATE row lock, so first-committed-wins
// ordering holds across processes, not just goroutines.
type MySQLAuctionStore struct {
	db *gorm.DB
}

// NewMySQLAuctionStore creates an auction store backed by the given connection
func NewMySQLAuctionStore(db *gorm.DB) *MySQLAuctionStore {
	return &MySQLAuctionStore{db: db}
}

// ListActive returns lots whose end time is still in the future, in id order.
func (s *MySQLAuctionStore) ListActive(now time.Time) ([]model.AuctionLot, error) {
	var rows []lotRow
	err := s.db.
		Preload("Bids", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Where("end_time > ?", now).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list active lots: %w", err)
	}
	return rowsToLots(rows), nil
}

// ListAll returns every lot in id order, expired ones included.
func (s *MySQLAuctionStore) ListAll() ([]model.AuctionLot, error) {
	var rows []lotRow
	err := s.db.
		Preload("Bids", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	return rowsToLots(rows), nil
}

// FindByID returns the lot with the given id
func (s *MySQLAuctionStore) FindByID(id int) (model.AuctionLot, error) {
	var row lotRow
	err := s.db.
		Preload("Bids", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.AuctionLot{}, fmt.Errorf("find lot %d: %w", id, marketerrors.ErrLotNotFound)
	}
	if err != nil {
		return model.AuctionLot{}, fmt.Errorf("find lot %d: %w", id, err)
	}
	return lotRowToModel(row), nil
}

// Append stores a new lot with id = count + 1 and no bids yet.
func (s *MySQLAuctionStore) Append(lot model.AuctionLot) (model.AuctionLot, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&lotRow{}).Count(&count).Error; err != nil {
			return err
		}
		lot.ID = int(count) + 1
		lot.CurrentBid = lot.StartingBid
		lot.BidCount = 0
		lot.Bids = []model.Bid{}

		return tx.Create(&lotRow{
			ID:          lot.ID,
			Title:       lot.Title,
			Description: lot.Description,
			StartingBid: lot.StartingBid,
			CurrentBid:  lot.CurrentBid,
			EndTime:     lot.EndTime,
			Image:       lot.Image,
		}).Error
	})
	if err != nil {
		return model.AuctionLot{}, fmt.Errorf("append lot: %w", err)
	}
	return lot, nil
}

// Update applies fn to the lot inside a transaction holding the row lock.
// Newly appended ledger entries are inserted and the lot row is updated in
// the same transaction; an error from fn rolls everything back.
func (s *MySQLAuctionStore) Update(id int, fn func(*model.AuctionLot) error) (model.AuctionLot, error) {
	var updated model.AuctionLot

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var row lotRow
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("update lot %d: %w", id, marketerrors.ErrLotNotFound)
		}
		if err != nil {
			return fmt.Errorf("update lot %d: %w", id, err)
		}

		if err := tx.Where("lot_id = ?", id).Order("seq ASC").Find(&row.Bids).Error; err != nil {
			return fmt.Errorf("load bids for lot %d: %w", id, err)
		}

		lot := lotRowToModel(row)
		before := len(lot.Bids)

		if err := fn(&lot); err != nil {
			return err
		}

		for _, b := range lot.Bids[before:] {
			if err := tx.Create(&bidRow{
				LotID:     id,
				Seq:       b.ID,
				Amount:    b.Amount,
				Bidder:    b.Bidder,
				Timestamp: b.Timestamp,
			}).Error; err != nil {
				return fmt.Errorf("append bid to lot %d: %w", id, err)
			}
		}

		if err := tx.Model(&lotRow{}).Where("id = ?", id).
			Update("current_bid", lot.CurrentBid).Error; err != nil {
			return fmt.Errorf("update current bid for lot %d: %w", id, err)
		}

		updated = lot
		return nil
	})
	if err != nil {
		return model.AuctionLot{}, err
	}
	return updated, nil
}

func rowsToLots(rows []lotRow) []model.AuctionLot {
	lots := make([]model.AuctionLot, 0, len(rows))
	for _, row := range rows {
		lots = append(lots, lotRowToModel(row))
	}
	return lots
}
