package integrationtests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func coinBody(title, price string) map[string]string {
	return map[string]string{
		"title":       title,
		"price":       price,
		"weight":      "26.73g",
		"year":        "1794",
		"description": "integration coin",
		"image":       "/images/test.jpg",
	}
}

// Full catalog CRUD flow through the admin-gated endpoints.
func TestCoinCatalogCRUD(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAsAdmin(t, router)

	// create two listings
	resp, w := ExecuteRequest(t, router, http.MethodPost, "/api/coins", coinBody("Flowing Hair Dollar", "$12,000,000"), token)
	require.Equal(t, http.StatusCreated, w.Code)
	first := Data(t, resp)
	require.Equal(t, float64(1), first["id"])

	resp, w = ExecuteRequest(t, router, http.MethodPost, "/api/coins", coinBody("Brasher Doubloon", "$9,360,000"), token)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, float64(2), Data(t, resp)["id"])

	// list is public and ordered
	resp, w = ExecuteRequest(t, router, http.MethodGet, "/api/coins", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	coins := resp["data"].([]any)
	require.Len(t, coins, 2)
	require.Equal(t, "Flowing Hair Dollar", coins[0].(map[string]any)["title"])

	// update by id
	resp, w = ExecuteRequest(t, router, http.MethodPut, "/api/coins/2", coinBody("Brasher Doubloon", "$9,999,999"), token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "$9,999,999", Data(t, resp)["price"])

	// delete by id
	_, w = ExecuteRequest(t, router, http.MethodDelete, "/api/coins/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequest(t, router, http.MethodGet, "/api/coins", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	coins = resp["data"].([]any)
	require.Len(t, coins, 1)
	require.Equal(t, float64(2), coins[0].(map[string]any)["id"])
}

// New ids are always max(existing) + 1.
func TestCoinIDAssignment(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAsAdmin(t, router)

	for i := 1; i <= 7; i++ {
		resp, w := ExecuteRequest(t, router, http.MethodPost, "/api/coins",
			coinBody(fmt.Sprintf("coin %d", i), "$100"), token)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, float64(i), Data(t, resp)["id"])
	}

	resp, w := ExecuteRequest(t, router, http.MethodPost, "/api/coins", coinBody("the eighth", "$100"), token)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, float64(8), Data(t, resp)["id"])
}

// Mutations without a token are rejected; reads stay public.
func TestCoinEndpointsAuth(t *testing.T) {
	router, _ := SetupTestRouter(t)

	_, w := ExecuteRequest(t, router, http.MethodPost, "/api/coins", coinBody("coin", "$1"), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	_, w = ExecuteRequest(t, router, http.MethodPut, "/api/coins/1", coinBody("coin", "$1"), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	_, w = ExecuteRequest(t, router, http.MethodDelete, "/api/coins/1", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	_, w = ExecuteRequest(t, router, http.MethodGet, "/api/coins", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
}

// Error statuses for the coin endpoints.
func TestCoinErrorStatuses(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAsAdmin(t, router)

	_, w := ExecuteRequest(t, router, http.MethodPut, "/api/coins/99", coinBody("ghost", "$1"), token)
	require.Equal(t, http.StatusNotFound, w.Code)

	_, w = ExecuteRequest(t, router, http.MethodDelete, "/api/coins/99", nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)

	_, w = ExecuteRequest(t, router, http.MethodPut, "/api/coins/abc", coinBody("coin", "$1"), token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, w = ExecuteRequest(t, router, http.MethodPost, "/api/coins", map[string]string{"price": "$1"}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
