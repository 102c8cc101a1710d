package repository

import (
	"errors"
	"fmt"

	"coin-market/internal/marketerrors"
	model "coin-market/internal/models"

	"gorm.io/gorm"
)

// MySQLCoinStore is a durable CoinStore with per-row updates instead of the
// file store's whole-collection rewrites.
type MySQLCoinStore struct {
	db *gorm.DB
}

// NewMySQLCoinStore creates a coin store backed by the given connection
func NewMySQLCoinStore(db *gorm.DB) *MySQLCoinStore {
	return &MySQLCoinStore{db: db}
}

// List returns the full catalog in id order
func (s *MySQLCoinStore) List() ([]model.Coin, error) {
	var rows []coinRow
	if err := s.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list coins: %w", err)
	}

	coins := make([]model.Coin, 0, len(rows))
	for _, row := range rows {
		coins = append(coins, coinRowToModel(row))
	}
	return coins, nil
}

// FindByID returns the coin with the given id
func (s *MySQLCoinStore) FindByID(id int) (model.Coin, error) {
	var row coinRow
	err := s.db.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Coin{}, fmt.Errorf("find coin %d: %w", id, marketerrors.ErrCoinNotFound)
	}
	if err != nil {
		return model.Coin{}, fmt.Errorf("find coin %d: %w", id, err)
	}
	return coinRowToModel(row), nil
}

// Create inserts a coin with id = max(existing ids) + 1.
func (s *MySQLCoinStore) Create(coin model.Coin) (model.Coin, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var maxID int
		if err := tx.Model(&coinRow{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		coin.ID = maxID + 1

		row := coinModelToRow(coin)
		return tx.Create(&row).Error
	})
	if err != nil {
		return model.Coin{}, fmt.Errorf("create coin: %w", err)
	}
	return coin, nil
}

// Update replaces the coin with the given id
func (s *MySQLCoinStore) Update(id int, coin model.Coin) (model.Coin, error) {
	var existing coinRow
	err := s.db.First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Coin{}, fmt.Errorf("update coin %d: %w", id, marketerrors.ErrCoinNotFound)
	}
	if err != nil {
		return model.Coin{}, fmt.Errorf("update coin %d: %w", id, err)
	}

	coin.ID = id
	row := coinModelToRow(coin)
	if err := s.db.Save(&row).Error; err != nil {
		return model.Coin{}, fmt.Errorf("update coin %d: %w", id, err)
	}
	return coin, nil
}

// Delete removes the coin with the given id
func (s *MySQLCoinStore) Delete(id int) error {
	res := s.db.Delete(&coinRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete coin %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete coin %d: %w", id, marketerrors.ErrCoinNotFound)
	}
	return nil
}
