package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"userhub/pkg/utils"
)

// JWTAuthMiddleware validates the bearer token and stores the resolved
// identity in the request context. The outward message is the same for
// malformed, tampered, and expired tokens.
func JWTAuthMiddleware(verifier utils.TokenVerifier) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Access token required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := verifier.Verify(tokenString)

		if err != nil {
			log.Printf("Token rejected: %v", err)
			utils.RespondError(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
