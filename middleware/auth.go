package middleware

import (
	"net/http"
	"strings"

	"duo-server/auth"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "authUserID"
	ContextEmailKey  = "authEmail"
)

// RequireAuth rejects requests that do not carry a valid bearer token and
// places the token's identity into the gin context for handlers. It never
// touches the database; the token payload is trusted until it expires.
func RequireAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token not provided or invalid"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ParseToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id set by RequireAuth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
