package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/kland-web/pkg/errors"
	"github.com/noah-isme/kland-web/pkg/response"
)

type rateLimiter interface {
	Hit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit throttles requests per client IP within a fixed window. Counter
// failures let the request through.
func RateLimit(limiter rateLimiter, scope string, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if limiter == nil || limit <= 0 {
			c.Next()
			return
		}
		allowed, err := limiter.Hit(c.Request.Context(), scope+":"+c.ClientIP(), limit, window)
		if err != nil {
			logger.Warn("rate limit check failed", zap.String("scope", scope), zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			response.Abort(c, appErrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
