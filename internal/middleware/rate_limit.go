package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/unicrud/internal/pkg/apperrors"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests with 429 once the process-wide token bucket is empty.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			HandleAPIError(c, apperrors.ErrRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
