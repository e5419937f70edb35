package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"glowspa/services/wizard"
	"glowspa/utils"
)

// Context keys set by JWTAuthMiddleware.
const (
	CtxUserID  = "userID"
	CtxEmail   = "userEmail"
	CtxRole    = "userRole"
	CtxSubRole = "userSubRole"
)

// JWTAuthMiddleware validates the bearer token and exposes the user's
// identity and role claims to handlers.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxSubRole, claims.SubRole)
		c.Next()
	}
}

// StaffOnlyMiddleware rejects requests whose role claims are not staff.
// Staffness is decided by the wizard's role classifier, so catalog writes are
// restricted to exactly the roles that book walk-ins. Must run after
// JWTAuthMiddleware.
func StaffOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if wizard.ClassifyRole(c.GetString(CtxRole), c.GetString(CtxSubRole)) != wizard.RoleStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}
		c.Next()
	}
}
