package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	revokedSessionPrefix = "session:revoked:"
	rateLimitPrefix      = "ratelimit:"
)

// SessionRepository keeps session revocations and request counters in Redis.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository constructs the repository.
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Revoke marks a session id as logged out until ttl elapses.
func (r *SessionRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedSessionPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// IsRevoked reports whether a session id was logged out.
func (r *SessionRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedSessionPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check session revocation: %w", err)
	}
	return n > 0, nil
}

// Hit counts one request against key within a fixed window and reports
// whether the caller is still under limit.
func (r *SessionRepository) Hit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	fullKey := rateLimitPrefix + key
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit hit: %w", err)
	}
	return incr.Val() <= int64(limit), nil
}
