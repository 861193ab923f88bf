package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"waitline/internal/infrastructure/ratelimit"
	"waitline/internal/shared/utils"
)

// UserRateLimiter throttles authenticated endpoints per user via the
// sliding-window limiter.
type UserRateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
}

func NewUserRateLimiter(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig) *UserRateLimiter {
	return &UserRateLimiter{
		limiter: limiter,
		config:  config,
	}
}

// Limit returns a Gin middleware enforcing the limit per authenticated user.
func (rl *UserRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserIDFromContext(c)
		if !ok {
			c.Next()
			return
		}

		key := fmt.Sprintf("user:%d", userID)

		allowed, err := rl.limiter.Allow(key, rl.config)
		if err != nil {
			// If Redis is unavailable, allow the request to avoid blocking all traffic
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
