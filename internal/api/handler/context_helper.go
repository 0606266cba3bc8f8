package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/response"
)

// MustGetStaffID safely extracts staff_id from the Gin context. If the JWT
// middleware did not inject it, writes a 401 and returns false; the caller
// should return immediately on ok=false.
func MustGetStaffID(c *gin.Context) (string, bool) {
	v, exists := c.Get("staff_id")
	if !exists {
		response.Unauthorized(c, "Unauthorized")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "Unauthorized")
		return "", false
	}
	return s, true
}

// MustGetRole safely extracts role from the Gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, "Unauthorized")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "Unauthorized")
		return "", false
	}
	return s, true
}
