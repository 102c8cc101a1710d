package catalog

import (
	"errors"
	"path/filepath"
	"testing"

	"coin-market/internal/marketerrors"
	model "coin-market/internal/models"
	"coin-market/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// newFileService wires a Service to a file store in a temp dir.
func newFileService(t *testing.T) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coins.json")
	return NewService(repository.NewFileCoinStore(path))
}

func newCoin(title, price string) model.Coin {
	return model.Coin{
		Title:       title,
		Price:       price,
		Weight:      "33.4g",
		Year:        "1933",
		Description: "test listing",
		Image:       "/images/" + title + ".jpg",
	}
}

// Tests CreateCoin
func TestService_CreateCoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		coin          model.Coin
		expectedError error
	}{
		{name: "valid_coin", coin: newCoin("Double Eagle", "$18,900,000"), expectedError: nil},
		{name: "missing_title", coin: newCoin("", "$100"), expectedError: marketerrors.ErrInvalidCoin},
		{name: "missing_price", coin: newCoin("Morgan Dollar", ""), expectedError: marketerrors.ErrInvalidCoin},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := newFileService(t)
			created, err := svc.CreateCoin(tc.coin)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, 1, created.ID)
			require.Equal(t, tc.coin.Title, created.Title)
		})
	}

	t.Run("id_is_max_plus_one", func(t *testing.T) {
		t.Parallel()

		svc := newFileService(t)
		for i := 0; i < 7; i++ {
			_, err := svc.CreateCoin(newCoin("coin", "$10"))
			require.NoError(t, err)
		}

		// deleting a middle coin must not cause id reuse
		require.NoError(t, svc.DeleteCoin(3))

		created, err := svc.CreateCoin(newCoin("newest", "$10"))
		require.NoError(t, err)
		require.Equal(t, 8, created.ID)
	})
}

// Round-trip property: a written collection reads back identically, in order.
func TestService_ListCoins_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newFileService(t)

	want := []model.Coin{}
	for _, title := range []string{"Double Eagle", "Flowing Hair Dollar", "Gold Dinar"} {
		created, err := svc.CreateCoin(newCoin(title, "$1,000"))
		require.NoError(t, err)
		want = append(want, created)
	}

	got, err := svc.ListCoins()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// The list cache must never serve stale data after a mutation.
func TestService_ListCoins_CacheInvalidation(t *testing.T) {
	t.Parallel()

	svc := newFileService(t)

	created, err := svc.CreateCoin(newCoin("Double Eagle", "$100"))
	require.NoError(t, err)

	first, err := svc.ListCoins()
	require.NoError(t, err)
	require.Len(t, first, 1)

	created.Price = "$250"
	_, err = svc.UpdateCoin(created.ID, created)
	require.NoError(t, err)

	second, err := svc.ListCoins()
	require.NoError(t, err)
	require.Equal(t, "$250", second[0].Price)

	require.NoError(t, svc.DeleteCoin(created.ID))

	third, err := svc.ListCoins()
	require.NoError(t, err)
	require.Empty(t, third)
}

// Tests UpdateCoin / DeleteCoin error paths
func TestService_UpdateDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc := newFileService(t)

	_, err := svc.UpdateCoin(99, newCoin("ghost", "$1"))
	require.ErrorIs(t, err, marketerrors.ErrCoinNotFound)

	err = svc.DeleteCoin(99)
	require.ErrorIs(t, err, marketerrors.ErrCoinNotFound)
}

// Storage faults surface to the caller instead of degrading to an empty list.
func TestService_ListCoins_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockCoinStore(ctrl)
	mockStore.EXPECT().List().Return(nil, errors.New("disk unreadable"))

	svc := NewService(mockStore)
	_, err := svc.ListCoins()
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk unreadable")
}
