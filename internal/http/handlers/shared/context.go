package shared

import (
	"github.com/flipzokart/api/internal/http/response"
	"github.com/flipzokart/api/internal/models"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "user"
)

// CurrentUserID reads the authenticated user id. It writes a 401 and
// returns false when the request carries no session.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		response.Unauthorized(c, "Authentication required")
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, "Authentication required")
		return 0, false
	}
	return id, true
}

// CurrentUser reads the authenticated user record loaded by the middleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		response.Unauthorized(c, "Authentication required")
		return nil, false
	}
	user, ok := value.(*models.User)
	if !ok || user == nil {
		response.Unauthorized(c, "Authentication required")
		return nil, false
	}
	return user, true
}
