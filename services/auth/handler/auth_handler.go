package handler

import (
	"net/http"
	"time"

	"coin-market/internal/marketerrors"
	"coin-market/utils"

	"github.com/gin-gonic/gin"
)

type AuthServiceInterface interface {
	Login(username, password string) (string, time.Time, error)
}

// LoginRequest is the admin credential payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginHandler handles POST /api/admin/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid request payload")
		utils.Warn("LoginHandler: binding error", map[string]any{"error": err.Error()})
		return
	}

	token, expiresAt, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		// always the same response for bad user, bad password, or
		// unconfigured login; no credential probing
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrInvalidCredentials, "invalid credentials")
		utils.Warn("LoginHandler: failed login attempt", map[string]any{"username": req.Username})
		return
	}

	resp := LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	utils.Info("LoginHandler: admin logged in", map[string]any{"username": req.Username})
}
