package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *MockAuthServiceInterface) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockAuthServiceInterface(ctrl)
	h := NewAuthHandler(mockService)

	router := gin.New()
	router.POST("/api/admin/login", h.LoginHandler)
	return router, mockService
}

func performLogin(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_Success(t *testing.T) {
	t.Parallel()

	router, mockService := setupAuthRouter(t)
	expiresAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockService.EXPECT().
		Login("admin", "hunter2").
		Return("signed-token", expiresAt, nil)

	w := performLogin(t, router, map[string]any{"username": "admin", "password": "hunter2"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, true, resp["success"])

	data, ok := resp["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "signed-token", data["token"])
	require.Equal(t, "2026-03-01T12:00:00Z", data["expiresAt"])
}

func TestLoginHandler_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		setupMock  func(m *MockAuthServiceInterface)
		wantStatus int
	}{
		{
			name: "wrong_password",
			body: map[string]any{"username": "admin", "password": "nope"},
			setupMock: func(m *MockAuthServiceInterface) {
				m.EXPECT().
					Login("admin", "nope").
					Return("", time.Time{}, errors.New("crypto/bcrypt: hashedPassword is not the hash of the given password"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown_user",
			body: map[string]any{"username": "mallory", "password": "hunter2"},
			setupMock: func(m *MockAuthServiceInterface) {
				m.EXPECT().
					Login("mallory", "hunter2").
					Return("", time.Time{}, errors.New("unknown user"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing_password",
			body:       map[string]any{"username": "admin"},
			setupMock:  func(m *MockAuthServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty_body",
			body:       map[string]any{},
			setupMock:  func(m *MockAuthServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService := setupAuthRouter(t)
			tc.setupMock(mockService)

			w := performLogin(t, router, tc.body)

			require.Equal(t, tc.wantStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, false, resp["success"])
		})
	}
}
