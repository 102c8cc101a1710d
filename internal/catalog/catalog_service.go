package catalog

import (
	"fmt"
	"time"

	"coin-market/internal/marketerrors"
	"coin-market/internal/models"
	"coin-market/internal/repository"

	"github.com/patrickmn/go-cache"
)

const listCacheKey = "coins:list"

// Service implements catalog CRUD over a CoinStore. The full-collection
// read is cached briefly since the file store re-reads the whole document
// on every call; any mutation invalidates the cache.
type Service struct {
	store repository.CoinStore
	cache *cache.Cache
}

// NewService creates a new catalog Service instance
func NewService(store repository.CoinStore) *Service {
	return &Service{
		store: store,
		cache: cache.New(30*time.Second, time.Minute),
	}
}

// ListCoins returns the full catalog in stored order
func (s *Service) ListCoins() ([]models.Coin, error) {
	if cached, ok := s.cache.Get(listCacheKey); ok {
		return cached.([]models.Coin), nil
	}

	coins, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list coins: %w", err)
	}

	s.cache.SetDefault(listCacheKey, coins)
	return coins, nil
}

// GetCoin returns the coin with the given id
func (s *Service) GetCoin(id int) (models.Coin, error) {
	coin, err := s.store.FindByID(id)
	if err != nil {
		return models.Coin{}, fmt.Errorf("service: failed to get coin %d: %w", id, err)
	}
	return coin, nil
}

// CreateCoin validates and stores a new listing; the id is auto-assigned.
func (s *Service) CreateCoin(coin models.Coin) (models.Coin, error) {
	if err := validateCoin(coin); err != nil {
		return models.Coin{}, err
	}

	created, err := s.store.Create(coin)
	if err != nil {
		return models.Coin{}, fmt.Errorf("service: failed to create coin: %w", err)
	}

	s.cache.Delete(listCacheKey)
	return created, nil
}

// UpdateCoin validates and replaces the listing with the given id.
func (s *Service) UpdateCoin(id int, coin models.Coin) (models.Coin, error) {
	if err := validateCoin(coin); err != nil {
		return models.Coin{}, err
	}

	updated, err := s.store.Update(id, coin)
	if err != nil {
		return models.Coin{}, fmt.Errorf("service: failed to update coin %d: %w", id, err)
	}

	s.cache.Delete(listCacheKey)
	return updated, nil
}

// DeleteCoin removes the listing with the given id.
func (s *Service) DeleteCoin(id int) error {
	if err := s.store.Delete(id); err != nil {
		return fmt.Errorf("service: failed to delete coin %d: %w", id, err)
	}

	s.cache.Delete(listCacheKey)
	return nil
}

// validateCoin checks the minimum fields a listing needs to render.
func validateCoin(coin models.Coin) error {
	if coin.Title == "" {
		return fmt.Errorf("service: %w - missing title", marketerrors.ErrInvalidCoin)
	}
	if coin.Price == "" {
		return fmt.Errorf("service: %w - missing price", marketerrors.ErrInvalidCoin)
	}
	return nil
}
