package auction

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"coin-market/internal/marketerrors"
	model "coin-market/internal/models"
	"coin-market/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestService wires a Service to a real in-memory store with a fixed clock.
func newTestService(t *testing.T, now time.Time) (*Service, *repository.MemoryAuctionStore) {
	t.Helper()
	store := repository.NewMemoryAuctionStore()
	svc := NewService(store)
	svc.now = func() time.Time { return now }
	return svc, store
}

// seedLot appends a lot and raises its current bid to currentBid via an
// initial accepted bid when currentBid > startingBid.
func seedLot(t *testing.T, svc *Service, store *repository.MemoryAuctionStore, startingBid, currentBid int64, endTime time.Time) model.AuctionLot {
	t.Helper()

	lot, err := store.Append(model.AuctionLot{
		Title:       "1933 Saint-Gaudens Double Eagle",
		Description: "One of the rarest US gold coins",
		StartingBid: decimal.NewFromInt(startingBid),
		EndTime:     endTime,
	})
	require.NoError(t, err)

	if currentBid > startingBid {
		lot, err = svc.PlaceBid(lot.ID, "seed-bidder", decimal.NewFromInt(currentBid))
		require.NoError(t, err)
	}
	return lot
}

// Tests PlaceBid
func TestService_PlaceBid(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name          string
		endTime       time.Time
		bidder        string
		amount        int64
		expectedError error
	}{
		{name: "accepted_above_current", endTime: future, bidder: "alice", amount: 4_000_000, expectedError: nil},
		{name: "rejected_below_current", endTime: future, bidder: "bob", amount: 3_000_000, expectedError: marketerrors.ErrBidTooLow},
		{name: "rejected_equal_to_current", endTime: future, bidder: "bob", amount: 3_500_000, expectedError: marketerrors.ErrBidTooLow},
		{name: "rejected_after_end_time", endTime: past, bidder: "carol", amount: 9_000_000, expectedError: marketerrors.ErrLotExpired},
		{name: "rejected_empty_bidder", endTime: future, bidder: "", amount: 4_000_000, expectedError: marketerrors.ErrInvalidBid},
		{name: "rejected_zero_amount", endTime: future, bidder: "dave", amount: 0, expectedError: marketerrors.ErrInvalidBid},
		{name: "rejected_negative_amount", endTime: future, bidder: "dave", amount: -50, expectedError: marketerrors.ErrInvalidBid},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, store := newTestService(t, now)
			// A closed lot cannot be seeded with bids, so seed while
			// open and rewind the end time afterwards.
			lot := seedLot(t, svc, store, 2_500_000, 3_500_000, future)
			if !tc.endTime.Equal(future) {
				lot = mustResetEndTime(t, store, lot.ID, tc.endTime)
			}

			updated, err := svc.PlaceBid(lot.ID, tc.bidder, decimal.NewFromInt(tc.amount))

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)

				// rejection must leave the lot unchanged
				after, findErr := store.FindByID(lot.ID)
				require.NoError(t, findErr)
				require.True(t, after.CurrentBid.Equal(lot.CurrentBid))
				require.Equal(t, lot.BidCount, after.BidCount)
				return
			}

			require.NoError(t, err)
			require.True(t, updated.CurrentBid.Equal(decimal.NewFromInt(tc.amount)))
			require.Equal(t, lot.BidCount+1, updated.BidCount)
			require.Equal(t, updated.BidCount, len(updated.Bids))
			require.Equal(t, tc.bidder, updated.Bids[len(updated.Bids)-1].Bidder)
		})
	}

	t.Run("unknown_lot", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t, now)
		_, err := svc.PlaceBid(42, "alice", decimal.NewFromInt(100))
		require.ErrorIs(t, err, marketerrors.ErrLotNotFound)
	})

	t.Run("store_failure_is_wrapped", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := repository.NewMockAuctionStore(ctrl)
		mockStore.EXPECT().
			Update(7, gomock.Any()).
			Return(model.AuctionLot{}, errors.New("store write failed"))

		svc := NewService(mockStore)
		_, err := svc.PlaceBid(7, "alice", decimal.NewFromInt(100))
		require.Error(t, err)
		require.Contains(t, err.Error(), "store write failed")
	})
}

// mustResetEndTime rewinds a lot's end time directly through the store,
// bypassing bid validation.
func mustResetEndTime(t *testing.T, store *repository.MemoryAuctionStore, lotID int, endTime time.Time) model.AuctionLot {
	t.Helper()
	lot, err := store.Update(lotID, func(l *model.AuctionLot) error {
		l.EndTime = endTime
		return nil
	})
	require.NoError(t, err)
	return lot
}

// The ledger is strictly increasing in acceptance order and the current bid
// never falls below the starting bid, no matter how many bidders race.
func TestService_PlaceBid_Concurrent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, now)
	lot := seedLot(t, svc, store, 100, 100, now.Add(time.Hour))

	var wg sync.WaitGroup
	concurrentCount := 100

	for i := 0; i < concurrentCount; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			// Amounts overlap on purpose; most bids lose the race.
			amount := decimal.NewFromInt(int64(100 + i%25 + 1))
			_, err := svc.PlaceBid(lot.ID, fmt.Sprintf("bidder-%d", i), amount)
			if err != nil {
				require.ErrorIs(t, err, marketerrors.ErrBidTooLow)
			}
		}()
	}

	wg.Wait()

	final, err := store.FindByID(lot.ID)
	require.NoError(t, err)

	require.True(t, final.CurrentBid.GreaterThanOrEqual(final.StartingBid))
	require.Equal(t, len(final.Bids), final.BidCount)

	prev := final.StartingBid
	for i, b := range final.Bids {
		require.Equal(t, i+1, b.ID)
		require.True(t, b.Amount.GreaterThan(prev), "ledger must be strictly increasing in acceptance order")
		prev = b.Amount
	}
	if len(final.Bids) > 0 {
		require.True(t, final.CurrentBid.Equal(final.Bids[len(final.Bids)-1].Amount))
	}
}

// Tests AddLot
func TestService_AddLot(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		title         string
		startingBid   int64
		durationDays  int
		expectedError error
	}{
		{name: "valid_lot", title: "1794 Flowing Hair Dollar", startingBid: 2_500_000, durationDays: 7, expectedError: nil},
		{name: "missing_title", title: "", startingBid: 100, durationDays: 7, expectedError: marketerrors.ErrInvalidLot},
		{name: "zero_starting_bid", title: "Umayyad Gold Dinar", startingBid: 0, durationDays: 7, expectedError: marketerrors.ErrInvalidLot},
		{name: "zero_duration", title: "Umayyad Gold Dinar", startingBid: 100, durationDays: 0, expectedError: marketerrors.ErrInvalidLot},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newTestService(t, now)
			lot, err := svc.AddLot(tc.title, "test description", "", decimal.NewFromInt(tc.startingBid), tc.durationDays)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, 1, lot.ID)
			require.True(t, lot.CurrentBid.Equal(lot.StartingBid))
			require.Equal(t, 0, lot.BidCount)
			require.Empty(t, lot.Bids)
			require.Equal(t, now.Add(time.Duration(tc.durationDays)*24*time.Hour), lot.EndTime)
		})
	}

	t.Run("sequential_ids", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t, now)
		first, err := svc.AddLot("lot one", "", "", decimal.NewFromInt(100), 3)
		require.NoError(t, err)
		second, err := svc.AddLot("lot two", "", "", decimal.NewFromInt(100), 3)
		require.NoError(t, err)

		require.Equal(t, 1, first.ID)
		require.Equal(t, 2, second.ID)
	})
}

// Tests ListActive
func TestService_ListActive(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, now)

	open := seedLot(t, svc, store, 100, 100, now.Add(time.Hour))
	expired := seedLot(t, svc, store, 200, 200, now.Add(time.Hour))
	mustResetEndTime(t, store, expired.ID, now.Add(-time.Minute))
	alsoOpen := seedLot(t, svc, store, 300, 300, now.Add(72*time.Hour))

	active, err := svc.ListActive()
	require.NoError(t, err)

	require.Len(t, active, 2)
	// expired lots are filtered, not removed; input ordering is preserved
	require.Equal(t, open.ID, active[0].ID)
	require.Equal(t, alsoOpen.ID, active[1].ID)

	_, err = store.FindByID(expired.ID)
	require.NoError(t, err, "expired lots stay in the store")
}
