package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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
	case errors.Is(err, marketerrors.ErrCoinNotFound):
		return http.StatusNotFound, "coin not found"
	case errors.Is(err, marketerrors.ErrInvalidCoin):
		return http.StatusBadRequest, "invalid coin details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ParseIDParam parses the :id path parameter as a positive integer.
func ParseIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid coin id %q", c.Param("id"))
	}
	return id, nil
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
