package server

import (
	"net/http"
	"strings"
	"time"

	"coin-market/internal/marketerrors"
	"coin-market/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// TokenVerifier checks an admin session token and returns its subject.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// AdminAuthMiddleware rejects requests without a valid admin bearer token.
func AdminAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == token {
			token = ""
		}

		subject, err := verifier.Verify(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrInvalidToken, "unauthorized")
			utils.Warn("AdminAuthMiddleware: rejected request", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("admin", subject)
		c.Next()
	}
}
