package auth

import "github.com/gin-gonic/gin"

const (
	ctxUserID   = "userID"
	ctxUserRole = "userRole"
)

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(ctxUserID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserRole returns the authenticated user's role claim or empty string.
func GetUserRole(c *gin.Context) string {
	if v, ok := c.Get(ctxUserRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
