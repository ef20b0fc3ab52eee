package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"chatterbox/pkg/response"
)

// RateLimit enforces a per-client request budget on the chat endpoint.
// Keyed by client IP; each client gets ratePerMin tokens per minute with a
// burst of the same size.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.ratePerMin <= 0 {
			c.Next()
			return
		}

		key := c.ClientIP()
		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(m.ratePerMin)/60.0), m.ratePerMin)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}
