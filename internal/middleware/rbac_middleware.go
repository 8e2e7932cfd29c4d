package middleware

import (
	"net/http"

	"go-leave/internal/shared/response"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// Authorize gates a route on a resource/action grant for the caller's role.
// The role is set by AuthMiddleware from the verified token, so the workflow
// layer never re-derives identity.
func Authorize(enforcer *casbin.Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action})
			c.Abort()
			return
		}
		c.Next()
	}
}
