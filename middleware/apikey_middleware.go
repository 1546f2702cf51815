package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware gates every request behind a shared key when
// TRACKLITE_API_KEY is set. Callers are assumed pre-authorized per
// organization, so this is transport plumbing only, not authorization.
func APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := os.Getenv("TRACKLITE_API_KEY")
		if expected == "" {
			c.Next()
			return
		}

		if c.GetHeader("X-API-Key") != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or missing API key",
			})
			return
		}

		c.Next()
	}
}
