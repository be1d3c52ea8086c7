package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// memberIDKey is the key used to store the authenticated member's ID.
const memberIDKey = contextKey("memberID")

// GetMemberIDFromContext retrieves the authenticated member ID from the Gin
// context. It returns the id and a boolean indicating if it was found.
func GetMemberIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(memberIDKey); v != nil {
		id, ok := v.(string)
		return id, ok
	}
	return "", false
}

// MemberIDFromCtx is the plain-context variant for non-gin code paths.
func MemberIDFromCtx(ctx context.Context) (string, bool) {
	v := ctx.Value(memberIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
