package handler

import "github.com/gin-gonic/gin"

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// viewerID is the optional viewer identity for visibility filtering: nil for
// anonymous requests.
func viewerID(c *gin.Context) *int64 {
	if id, ok := currentUserID(c); ok {
		return &id
	}
	return nil
}
