package api

import (
	"alcyxob/workout-sessions/internal/metrics"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit limits writes per caller. Must run after AuthMiddleware; the key is
// "<routerName>:<principal id>".
func RateLimit(rateLimiter RequestRateLimiter, routerName string, allowedPerMin int, metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		key := routerName
		if principal, err := getPrincipalFromContext(c); err == nil {
			key = routerName + ":" + principal.ID.Hex()
		}

		res, err := rateLimiter.Allow(c.Request.Context(), key, redis_rate.PerMinute(allowedPerMin))
		if err != nil {
			log.WithError(err).Errorf("rate limit check for %s", key)
			abortWithError(c, http.StatusInternalServerError, "rate limit internal error")
			return
		}

		if res.Allowed > 0 {
			c.Next()
			return
		}

		if metricsManager != nil {
			metricsManager.CounterRateLimited.Inc()
		}
		c.Header("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
		abortWithError(c, http.StatusTooManyRequests, fmt.Sprintf("retry after %f seconds", res.RetryAfter.Seconds()))
	}
}
