package middleware

import (
	"net/http"
	"slices"

	"github.com/wb-go/wbf/ginext"
)

// CORS answers preflights and marks allowed origins. An allowed list of
// ["*"] mirrors the origin back, which keeps credentialed requests working.
func CORS(allowedOrigins []string) ginext.HandlerFunc {
	allowAll := slices.Contains(allowedOrigins, "*")

	return func(c *ginext.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || slices.Contains(allowedOrigins, origin)) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type,Authorization,X-Request-ID")
		c.Header("Access-Control-Max-Age", "600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
