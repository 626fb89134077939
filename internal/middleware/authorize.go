package middleware

import (
	"net/http"

	"github.com/lu2aa/attendance-system/internal/authz"
	"github.com/lu2aa/attendance-system/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize resolves the caller's role through the central privilege policy
// and enforces the object/action pair. The is_admin token claim is only a
// hint for the UI; the lookup here is authoritative.
func Authorize(authzService authz.Service, object, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")

		role, err := authzService.RoleFor(c.Request.Context(), email)
		if err != nil {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Privilege check failed", nil)
			c.Abort()
			return
		}

		allowed, err := authzService.Enforce(role, object, action)
		if err != nil || !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}

		c.Set("role", role)
		c.Next()
	}
}

// RequireAdmin is Authorize specialized for admin-only pages.
func RequireAdmin(authzService authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")

		privileged, err := authzService.IsPrivileged(c.Request.Context(), email)
		if err != nil || !privileged {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required", nil)
			c.Abort()
			return
		}

		c.Set("role", authz.RoleAdmin)
		c.Next()
	}
}
