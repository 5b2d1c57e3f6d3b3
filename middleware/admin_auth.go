package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"nutrify/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthFailure is invoked on rejected admin requests so the caller can
// wire an ops alert for unauthorized access attempts. May be nil.
type AdminAuthFailure func(ip, path string)

// AdminAuthMiddleware guards admin endpoints with the static bearer token
// from configuration. An empty configured token locks admin endpoints
// entirely.
func AdminAuthMiddleware(onFailure AdminAuthFailure) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := config.AppConfig.AdminToken

		authHeader := c.GetHeader("Authorization")
		if token == "" || authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			reject(c, onFailure)
			return
		}

		presented := strings.TrimPrefix(authHeader, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			reject(c, onFailure)
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}

func reject(c *gin.Context, onFailure AdminAuthFailure) {
	if onFailure != nil {
		onFailure(clientIP(c), c.FullPath())
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
}
