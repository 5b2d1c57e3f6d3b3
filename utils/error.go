package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// OpsAlertFunc posts an operational alert to the chat channel. Wired in main;
// a nil hook disables alerting.
type OpsAlertFunc func(message string)

// ErrorHandler is a middleware that catches panics, returns a structured error
// and fires a best-effort ops alert.
func ErrorHandler(alert OpsAlertFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.FullPath()))

				if alert != nil {
					alert(fmt.Sprintf("panic on %s %s: %v", c.Request.Method, c.FullPath(), err))
				}

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
