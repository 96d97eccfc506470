package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/wb-go/wbf/ginext"
	"golang.org/x/time/rate"
)

// MaxBodyBytes caps request bodies so an oversized payload fails inside the
// JSON bind instead of being buffered whole.
func MaxBodyBytes(maxBytes int64) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

type ipBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimit is a token bucket per client IP. Buckets idle past the ttl are
// dropped by a background sweep so the map does not grow unbounded.
func RateLimit(perSecond float64, burst int) ginext.HandlerFunc {
	const ttl = 5 * time.Minute

	var (
		mu      sync.Mutex
		buckets = make(map[string]*ipBucket)
	)

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			mu.Lock()
			for ip, b := range buckets {
				if now.Sub(b.seen) > ttl {
					delete(buckets, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *ginext.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		mu.Lock()
		b, ok := buckets[ip]
		if !ok {
			b = &ipBucket{lim: rate.NewLimiter(rate.Limit(perSecond), burst)}
			buckets[ip] = b
		}
		b.seen = time.Now()
		allowed := b.lim.Allow()
		mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				ginext.H{"error": "rate limit exceeded"},
			)
			return
		}

		c.Next()
	}
}
