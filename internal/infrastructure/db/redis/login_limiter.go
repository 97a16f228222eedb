package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 5
	defaultWindow      = 15 * time.Minute
)

// LoginLimiter throttles repeated failed logins per username using a counter
// with a sliding expiry. Key format: login_attempts:<username>
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive limits fall back to the defaults.
func NewLoginLimiter(client *redis.Client, maxFailures int, window time.Duration) *LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, maxFailures: int64(maxFailures), window: window}
}

// Allow reports whether the username is still under the failure threshold.
func (l *LoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n < l.maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login limiter record: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.key(username)).Err()
}

func (l *LoginLimiter) key(username string) string {
	return "login_attempts:" + username
}
