package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/redis"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/response"
)

// RateLimit is a Redis fixed-window limiter keyed on client IP and route.
// rdb nil or a Redis error degrades to letting the request through, same
// policy as JWTAuth's blacklist check.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			response.TooManyRequests(c, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
