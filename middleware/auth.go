package middleware

import (
	"net/http"
	"strings"

	"taskhive/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and requires the given role
// ("user" for buyers, "provider" for providers). On success it sets
// "subjectID" and "role" in the context, plus "userID" or "providerID"
// depending on the role.
func JWTAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if requiredRole != "" && role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this endpoint"})
			return
		}

		c.Set("subjectID", subject)
		c.Set("role", role)
		switch role {
		case "user":
			c.Set("userID", subject)
		case "provider":
			c.Set("providerID", subject)
		}
		c.Next()
	}
}
