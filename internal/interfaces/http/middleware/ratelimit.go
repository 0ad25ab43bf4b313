package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aula/internal/infrastructure/ratelimit"
	"aula/internal/shared/logger"
	"aula/internal/shared/utils"
)

// RateLimitMiddleware throttles requests per client IP. It fails open when
// the limiter backend is unreachable; losing throttling is preferable to
// refusing logins during a redis outage.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit enforces cfg for the named endpoint group, keyed by client IP.
func (m *RateLimitMiddleware) Limit(name string, cfg ratelimit.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := name + ":" + c.ClientIP()

		allowed, err := m.limiter.Allow(c.Request.Context(), key, cfg)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
