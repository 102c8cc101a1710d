package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"coin-market/internal/marketerrors"
	"coin-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrLotNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketerrors.ErrLotExpired):
		return http.StatusGone, "auction has ended"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid must exceed the current bid"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrInvalidLot):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, marketerrors.ErrInvalidAction):
		return http.StatusBadRequest, "unrecognized action"
	case errors.Is(err, marketerrors.ErrInvalidToken):
		return http.StatusUnauthorized, "unauthorized"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// BearerToken extracts the Authorization bearer token, empty when absent.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
