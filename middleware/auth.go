package middleware

import (
	"crypto/subtle"
	"net/http"

	"restaurant-menu-api/config"

	"github.com/gin-gonic/gin"
)

// AdminRequired rejects any request whose X-Admin-Key header does not match
// the configured shared secret. There is no session or token exchange; the
// key travels with every mutating request.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(config.AdminKey)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
