package middleware

import (
	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/response"
)

// AdminOnly requires the principal attached by Auth to carry the admin role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.Forbidden(c, "access denied: admin role required")
			c.Abort()
			return
		}

		if r, ok := role.(string); !ok || r != "admin" {
			response.Forbidden(c, "access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
