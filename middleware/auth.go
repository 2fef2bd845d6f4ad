package middleware

import (
	"net/http"
	"strings"

	"urbanease/services/user"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key under which the resolved session is set.
const SessionKey = "userSession"

// SessionAuthMiddleware validates the gateway session token and loads the
// session into the request context. Handlers read it with SessionFromContext.
func SessionAuthMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		session, err := userSvc.ResolveSession(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired or invalid",
			})
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// RequireRole gates a route group to one account role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFromContext(c)
		if !ok || session.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "This action requires a " + role + " account",
			})
			return
		}
		c.Next()
	}
}
