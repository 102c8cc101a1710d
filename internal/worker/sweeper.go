package worker

import (
	"sync"
	"time"

	"coin-market/internal/feed"
	"coin-market/internal/repository"
	"coin-market/utils"

	"github.com/mileusna/crontab"
)

// Sweeper watches for lots crossing their end time. A lot that closes gets
// its winner logged and a lot_closed event pushed to the feed, exactly once.
type Sweeper struct {
	store repository.AuctionStore
	hub   *feed.Hub

	mu     sync.Mutex
	closed map[int]bool // lot IDs already announced
}

// NewSweeper creates a new Sweeper instance
func NewSweeper(store repository.AuctionStore, hub *feed.Hub) *Sweeper {
	return &Sweeper{
		store:  store,
		hub:    hub,
		closed: make(map[int]bool),
	}
}

// Start registers the sweep on the given cron schedule.
func (s *Sweeper) Start(ctab *crontab.Crontab, schedule string) error {
	return ctab.AddJob(schedule, s.Sweep)
}

// Sweep announces every newly closed lot.
func (s *Sweeper) Sweep() {
	s.sweepAt(time.Now().UTC())
}

func (s *Sweeper) sweepAt(now time.Time) {
	lots, err := s.store.ListAll()
	if err != nil {
		utils.Error("sweeper: failed to list lots", map[string]any{"error": err.Error()})
		return
	}

	for _, lot := range lots {
		if lot.Open(now) {
			continue
		}

		s.mu.Lock()
		seen := s.closed[lot.ID]
		s.closed[lot.ID] = true
		s.mu.Unlock()
		if seen {
			continue
		}

		fields := map[string]any{
			"lot_id":    lot.ID,
			"title":     lot.Title,
			"bid_count": lot.BidCount,
			"end_time":  lot.EndTime.Format(time.RFC3339),
		}
		if lot.BidCount > 0 {
			winning := lot.Bids[len(lot.Bids)-1]
			fields["winner"] = winning.Bidder
			fields["winning_amount"] = winning.Amount.String()
		}
		utils.Info("sweeper: lot closed", fields)

		s.hub.Broadcast(feed.EventLotClosed, lot)
	}
}
