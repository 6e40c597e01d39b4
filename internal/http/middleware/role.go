package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates admin-only routes. It runs after RequireAuth and
// allows the request iff the resolved user's role is nonzero, aborting
// before any handler side effects otherwise. There is no finer-grained
// permission model than this two-tier check.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"isAuth": false, "error": true})
			return
		}

		if !user.Role.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "you are not an admin"})
			return
		}

		c.Next()
	}
}
