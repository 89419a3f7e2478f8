package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"
	"tripwise/pkg/utils"
)

// JWTAuthMiddleware guards the planning API when JWT_SECRET is configured.
// Without a secret it is a no-op so local runs need no token plumbing.
func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		if !utils.AuthEnabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)

		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("client_name", claims.ClientName)
		c.Next()
	}
}
