package middleware

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger writes one line per finished request. Handlers leave their
// failure in the "error" context key (see handler.handleError) so it lands
// in the same line.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := logger.InfoLevel
		if status >= http.StatusInternalServerError {
			level = logger.ErrorLevel
		}

		if errVal, ok := c.Get("error"); ok {
			log.LogAttrs(c.Request.Context(), level, "request completed",
				logger.String("request_id", RequestIDFromCtx(c)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Int("status", status),
				logger.Duration("duration", time.Since(start)),
				logger.String("ip", c.ClientIP()),
				logger.Any("error", errVal),
			)
			return
		}

		log.LogAttrs(c.Request.Context(), level, "request completed",
			logger.String("request_id", RequestIDFromCtx(c)),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("duration", time.Since(start)),
			logger.String("ip", c.ClientIP()),
		)
	}
}
