package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"coin-market/internal/auction"
	"coin-market/internal/auth"
	"coin-market/internal/catalog"
	model "coin-market/internal/models"
	"coin-market/internal/repository"
	"coin-market/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "integration-secret"
)

// SetupTestRouter initializes the full router over an in-memory auction store
// and a temp-dir file catalog, seeded with the given lots.
func SetupTestRouter(t *testing.T, lots ...model.AuctionLot) (*gin.Engine, *repository.MemoryAuctionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auctionStore := repository.NewMemoryAuctionStore()
	for _, lot := range lots {
		_, err := auctionStore.Append(lot)
		require.NoError(t, err)
	}

	coinStore := repository.NewFileCoinStore(filepath.Join(t.TempDir(), "coins.json"))

	hash, err := auth.HashPassword(testAdminPassword)
	require.NoError(t, err)

	auctionSvc := auction.NewService(auctionStore)
	catalogSvc := catalog.NewService(coinStore)
	authSvc := auth.NewService(testAdminUser, hash, "integration-jwt-secret", time.Hour)

	router := server.SetupRouter(auctionSvc, catalogSvc, authSvc, nil)
	return router, auctionStore
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any, token string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reqBody = raw
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// LoginAsAdmin performs the login flow and returns a live session token.
func LoginAsAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	resp, w := ExecuteRequest(t, router, "POST", "/api/admin/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	}, "")
	require.Equal(t, 200, w.Code)

	data := resp["data"].(map[string]any)
	token := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// Data extracts the envelope's data field as a map.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return data
}
