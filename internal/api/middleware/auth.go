package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/jwt"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/redis"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/response"
)

// JWTAuth validates the Authorization: Bearer <token> header on staff routes
// and injects the staff identity into the context. rdb may be nil; the
// blacklist check is then skipped.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, "Invalid or expired token")
				c.Abort()
				return
			}
		}

		c.Set("staff_id", claims.StaffID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth requires one of the allowed staff roles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		staffRole := role.(string)
		for _, r := range allowedRoles {
			if staffRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Forbidden")
		c.Abort()
	}
}
