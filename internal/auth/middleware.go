package auth

import (
	"net/http"
	"strings"

	"gamestore/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// Middleware creates a gin middleware that requires a valid bearer token and
// stores its claims on the request context.
func Middleware(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		claims, err := tokens.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole creates a gin middleware that checks the authenticated user's
// role claims against a required role. It must be used AFTER Middleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		for _, r := range claims.Roles {
			if r == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": role + " access required"})
	}
}

// CurrentClaims returns the token claims set by Middleware, or nil when the
// request is unauthenticated.
func CurrentClaims(c *gin.Context) *jwt.Claims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*jwt.Claims)
	if !ok {
		return nil
	}
	return claims
}
