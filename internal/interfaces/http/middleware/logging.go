package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"aula/internal/shared/constants"
	"aula/internal/shared/logger"
)

func Logging(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetHeader(constants.HeaderXRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}

		if userID := UserID(c); userID != 0 {
			args = append(args, "user_id", userID)
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}
