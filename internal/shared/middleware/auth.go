package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"selleradmin-backend/internal/shared/response"
	"selleradmin-backend/pkg/jwt"
)

// ContextAccountKey is where Auth stores the verified login handle.
const ContextAccountKey = "account"

// Auth verifies the Bearer session token and puts the login handle on
// the request context. Expired tokens simply fail verification.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextAccountKey, claims.Account)
		c.Next()
	}
}
