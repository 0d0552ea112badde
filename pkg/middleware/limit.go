package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pathfinder/pkg/constant"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const limiterIdle = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPLimiter keeps one token bucket per client IP.
type IPLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       rate.Limit
	burst     int
	lastSweep time.Time
}

func NewIPLimiter(rps float64, burst int) *IPLimiter {
	if burst < 1 {
		burst = 1
	}
	return &IPLimiter{
		visitors:  make(map[string]*visitor),
		rps:       rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
	}
}

func (l *IPLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	// at most one sweep per idle window
	if now.Sub(l.lastSweep) > limiterIdle {
		for key, other := range l.visitors {
			if now.Sub(other.lastSeen) > limiterIdle {
				delete(l.visitors, key)
			}
		}
		l.lastSweep = now
	}

	return v.limiter.Allow()
}

// RateLimit rejects requests over the per-IP budget with 429. A non-positive
// rps disables limiting.
func RateLimit(l *IPLimiter, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.rps <= 0 {
			c.Next()
			return
		}
		if !l.Allow(c.ClientIP()) {
			log.Warn().Str("ip", c.ClientIP()).Str("path", c.FullPath()).Msg("too many requests")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": constant.TOO_MANY_REQUESTS})
			return
		}
		c.Next()
	}
}
