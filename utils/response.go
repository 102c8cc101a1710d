package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the standard success envelope: {success, message, data}
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JSONError sends the standard failure envelope: {success, message, error}
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
