package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"coin-market/internal/marketerrors"
	model "coin-market/internal/models"

	"github.com/samber/lo"
)

// FileCoinStore persists the catalog as a single ordered JSON document.
// Every operation reads the whole collection, mutates it in memory and
// rewrites the file via a temp-file rename so a crash mid-write never
// leaves a truncated catalog behind.
type FileCoinStore struct {
	mu   sync.Mutex
	path string
}

// NewFileCoinStore creates a file-backed coin store at the given path
func NewFileCoinStore(path string) *FileCoinStore {
	return &FileCoinStore{path: path}
}

// List returns the full catalog in stored order
func (s *FileCoinStore) List() ([]model.Coin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// FindByID returns the coin with the given id
func (s *FileCoinStore) FindByID(id int) (model.Coin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coins, err := s.load()
	if err != nil {
		return model.Coin{}, err
	}

	coin, ok := lo.Find(coins, func(c model.Coin) bool { return c.ID == id })
	if !ok {
		return model.Coin{}, fmt.Errorf("find coin %d: %w", id, marketerrors.ErrCoinNotFound)
	}
	return coin, nil
}

// Create appends a coin with id = max(existing ids) + 1 and rewrites the file.
func (s *FileCoinStore) Create(coin model.Coin) (model.Coin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coins, err := s.load()
	if err != nil {
		return model.Coin{}, err
	}

	coin.ID = nextCoinID(coins)
	coins = append(coins, coin)

	if err := s.save(coins); err != nil {
		return model.Coin{}, err
	}
	return coin, nil
}

// Update replaces the coin with the given id, keeping its position.
func (s *FileCoinStore) Update(id int, coin model.Coin) (model.Coin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coins, err := s.load()
	if err != nil {
		return model.Coin{}, err
	}

	_, idx, found := lo.FindIndexOf(coins, func(c model.Coin) bool { return c.ID == id })
	if !found {
		return model.Coin{}, fmt.Errorf("update coin %d: %w", id, marketerrors.ErrCoinNotFound)
	}

	coin.ID = id
	coins[idx] = coin

	if err := s.save(coins); err != nil {
		return model.Coin{}, err
	}
	return coin, nil
}

// Delete removes the coin with the given id and rewrites the file.
func (s *FileCoinStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coins, err := s.load()
	if err != nil {
		return err
	}

	remaining := lo.Reject(coins, func(c model.Coin, _ int) bool { return c.ID == id })
	if len(remaining) == len(coins) {
		return fmt.Errorf("delete coin %d: %w", id, marketerrors.ErrCoinNotFound)
	}

	return s.save(remaining)
}

// load reads the whole collection. A missing file means an empty catalog
// (first run); any other read or decode fault is surfaced, never swallowed.
func (s *FileCoinStore) load() ([]model.Coin, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []model.Coin{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}

	var coins []model.Coin
	if err := json.Unmarshal(raw, &coins); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", s.path, err)
	}
	if coins == nil {
		coins = []model.Coin{}
	}
	return coins, nil
}

// save rewrites the whole collection atomically (write temp file, rename).
func (s *FileCoinStore) save(coins []model.Coin) error {
	raw, err := json.MarshalIndent(coins, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace catalog %s: %w", s.path, err)
	}
	return nil
}

// nextCoinID assigns max(existing ids) + 1, starting at 1 for an empty catalog.
func nextCoinID(coins []model.Coin) int {
	if len(coins) == 0 {
		return 1
	}
	max := lo.MaxBy(coins, func(a, b model.Coin) bool { return a.ID > b.ID })
	return max.ID + 1
}
