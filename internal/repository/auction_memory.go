package repository

import (
	"fmt"
	"sync"
	"time"

	"coin-market/internal/marketerrors"
	model "coin-market/internal/models"

	"github.com/samber/lo"
)

// lotEntry pairs a lot with its own mutex so that concurrent bids on
// different lots never contend with each other.
type lotEntry struct {
	mu  sync.Mutex
	lot model.AuctionLot
}

// MemoryAuctionStore is a concurrency-safe in-memory implementation of AuctionStore.
// Lot state lives for the process lifetime only.
type MemoryAuctionStore struct {
	mu    sync.RWMutex      // guards entries and order
	lots  map[int]*lotEntry // key: lot ID
	order []int             // insertion order of lot IDs
}

// NewMemoryAuctionStore creates a new in-memory auction store instance
func NewMemoryAuctionStore() *MemoryAuctionStore {
	return &MemoryAuctionStore{
		lots: make(map[int]*lotEntry),
	}
}

// ListActive returns lots whose end time is still in the future, in insertion order.
func (s *MemoryAuctionStore) ListActive(now time.Time) ([]model.AuctionLot, error) {
	all, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(l model.AuctionLot, _ int) bool {
		return l.Open(now)
	}), nil
}

// ListAll returns every lot in insertion order, expired ones included.
func (s *MemoryAuctionStore) ListAll() ([]model.AuctionLot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.AuctionLot, 0, len(s.order))
	for _, id := range s.order {
		entry := s.lots[id]
		entry.mu.Lock()
		out = append(out, cloneLot(entry.lot))
		entry.mu.Unlock()
	}
	return out, nil
}

// FindByID returns a copy of the lot with the given id
func (s *MemoryAuctionStore) FindByID(id int) (model.AuctionLot, error) {
	s.mu.RLock()
	entry, ok := s.lots[id]
	s.mu.RUnlock()

	if !ok {
		return model.AuctionLot{}, fmt.Errorf("find lot %d: %w", id, marketerrors.ErrLotNotFound)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return cloneLot(entry.lot), nil
}

// Append stores a new lot, assigning the next id and resetting bid state.
func (s *MemoryAuctionStore) Append(lot model.AuctionLot) (model.AuctionLot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lot.ID = len(s.order) + 1
	lot.CurrentBid = lot.StartingBid
	lot.BidCount = 0
	lot.Bids = []model.Bid{}

	s.lots[lot.ID] = &lotEntry{lot: lot}
	s.order = append(s.order, lot.ID)

	return cloneLot(lot), nil
}

// Update runs fn on a working copy of the lot under its per-lot lock.
// The copy replaces the stored lot only when fn returns nil, so a failed
// validation leaves the lot exactly as it was.
func (s *MemoryAuctionStore) Update(id int, fn func(*model.AuctionLot) error) (model.AuctionLot, error) {
	s.mu.RLock()
	entry, ok := s.lots[id]
	s.mu.RUnlock()

	if !ok {
		return model.AuctionLot{}, fmt.Errorf("update lot %d: %w", id, marketerrors.ErrLotNotFound)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	working := cloneLot(entry.lot)
	if err := fn(&working); err != nil {
		return model.AuctionLot{}, err
	}

	entry.lot = working
	return cloneLot(working), nil
}

// cloneLot copies a lot including its bid ledger so callers can never
// mutate stored state through a returned value.
func cloneLot(lot model.AuctionLot) model.AuctionLot {
	bids := make([]model.Bid, len(lot.Bids))
	copy(bids, lot.Bids)
	lot.Bids = bids
	return lot
}
