package middleware

import (
	"net/http"
	"strings"

	"projectconnect/internal/auth"
	"projectconnect/internal/logger"
	"projectconnect/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the acting
// username in the gin context. Services never read it themselves; handlers
// pass it down as an explicit argument.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(string(contextkeys.UsernameKey), claims.Username)
		c.Request = c.Request.WithContext(logger.WithUsername(c.Request.Context(), claims.Username))
		c.Next()
	}
}
