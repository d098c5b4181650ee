package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rakibhasan-dev/findback/internal/pkg/logger"
)

// Logger logs each request with method, path, status, latency and the
// authenticated user when one is attached to the context.
func Logger() gin.HandlerFunc {
	skip := map[string]bool{
		"/health": true,
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skip[path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		method := c.Request.Method
		ip := c.ClientIP()
		userID := c.GetString("userID")

		if userID != "" {
			if status >= 500 {
				logger.Error("%s %s -> %d (%v) ip=%s user=%s", method, path, status, latency, ip, userID)
			} else {
				logger.Info("%s %s -> %d (%v) ip=%s user=%s", method, path, status, latency, ip, userID)
			}
			return
		}

		if status >= 500 {
			logger.Error("%s %s -> %d (%v) ip=%s", method, path, status, latency, ip)
		} else {
			logger.Info("%s %s -> %d (%v) ip=%s", method, path, status, latency, ip)
		}
	}
}
