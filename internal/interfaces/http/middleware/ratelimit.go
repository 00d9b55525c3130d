package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casefile/internal/infrastructure/ratelimit"
	"casefile/internal/shared/logger"
	"casefile/internal/shared/utils"
)

// SigninRateLimit throttles credential-guessing per client IP using the
// shared Redis sliding window. When Redis is unavailable the request is
// allowed through so an outage never locks everyone out.
func SigninRateLimit(limiter ratelimit.Limiter, limits ratelimit.Limits, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), "signin:"+c.ClientIP(), limits)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err, "client_ip", c.ClientIP())
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many signin attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
