package middleware

import (
	"net/http"
	"sync"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

// RateLimitPerIP keeps one token bucket per client IP
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		lim, ok := buckets[ip]
		if !ok {
			lim = rate.NewLimiter(rps, burst)
			buckets[ip] = lim
		}
		mu.Unlock()

		if lim.Allow() {
			c.Next()
			return
		}
		httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", "request rate limit exceeded, retry later")
	}
}
