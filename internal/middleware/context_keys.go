package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the acting user's ID in the context.
// Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// defaultUserID is used when the fronting proxy supplies no identity.
// Authentication itself is handled outside this service.
const defaultUserID = "anonymous"

// RequestUser extracts the acting user's ID from the X-User-ID header set by
// the fronting gateway and stores it in the request context for audit fields.
func RequestUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = defaultUserID
		}
		c.Set(string(userIDKey), userID)
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetUserIDFromContext retrieves the acting user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
