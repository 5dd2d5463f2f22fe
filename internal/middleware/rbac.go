package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shramik/admin-backend/internal/response"
)

// RequireAdmin admits only USER principals holding the ADMIN role.
// Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if !identity.IsAdmin() {
			response.AbortFail(c, http.StatusForbidden, response.ErrAdminAccessOnly)
			return
		}

		c.Next()
	}
}
