package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-backend/pkg/jwt"
)

const (
	// SessionCookieName is the cookie the web frontend forwards on every call.
	SessionCookieName = "user_token"

	// Context keys set for downstream handlers.
	CtxUserID       = "userID"
	CtxSessionToken = "sessionToken"
)

// AuthMiddleware validates the storefront session credential.
// The token normally arrives as the user_token cookie (set by the auth
// service); an Authorization bearer header is accepted as a fallback for
// API clients. The raw token is kept in the context because the backend
// collaborator expects it forwarded as a cookie.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(401, gin.H{"success": false, "error": "missing session credential"})
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(token)
		if err != nil {
			c.JSON(401, gin.H{"success": false, "error": "invalid token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(401, gin.H{"success": false, "error": "invalid user ID in token"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxSessionToken, token)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// UserID reads the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// SessionToken reads the raw session token set by AuthMiddleware.
func SessionToken(c *gin.Context) string {
	return c.GetString(CtxSessionToken)
}
