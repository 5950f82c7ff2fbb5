package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"stackql-cloud-intelligence/pkg/response"
)

// maxTrackedClients bounds limiter memory. Evicted clients simply start
// with a fresh allowance on their next request.
const maxTrackedClients = 4096

type clientLimiters struct {
	mu     sync.Mutex
	cache  *lru.Cache[string, *rate.Limiter]
	limit  rate.Limit
	burst  int
	perMin int
}

func newClientLimiters(perMin int) *clientLimiters {
	if perMin <= 0 {
		return &clientLimiters{perMin: 0}
	}
	cache, _ := lru.New[string, *rate.Limiter](maxTrackedClients)
	return &clientLimiters{
		cache:  cache,
		limit:  rate.Every(time.Minute / time.Duration(perMin)),
		burst:  perMin,
		perMin: perMin,
	}
}

func (c *clientLimiters) allow(clientIP string) bool {
	if c.perMin == 0 {
		return true
	}

	c.mu.Lock()
	limiter, ok := c.cache.Get(clientIP)
	if !ok {
		limiter = rate.NewLimiter(c.limit, c.burst)
		c.cache.Add(clientIP, limiter)
	}
	c.mu.Unlock()

	return limiter.Allow()
}

// RateLimit throttles requests per client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.clients.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
