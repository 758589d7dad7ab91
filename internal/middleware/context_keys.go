package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated user's ID. The custom contextKey
// type keeps it from colliding with other context values.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID. AuthMiddleware
// binds it to the request context; the Gin-context lookup covers callers
// that set it directly.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if val, exists := c.Get(string(userIDKey)); exists {
		userID, ok := val.(string)
		return userID, ok && userID != ""
	}

	if val := c.Request.Context().Value(userIDKey); val != nil {
		userID, ok := val.(string)
		return userID, ok && userID != ""
	}

	return "", false
}
