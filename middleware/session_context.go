package middleware

import (
	"urbanease/models"

	"github.com/gin-gonic/gin"
)

// SessionFromContext returns the session placed by SessionAuthMiddleware.
func SessionFromContext(c *gin.Context) (*models.UserSession, bool) {
	val, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := val.(*models.UserSession)
	return session, ok
}
