package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window request counter shared by every API instance.
// Key format: ratelimit:<key>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter allows max hits per key in each window.
func NewRateLimiter(client *redis.Client, max int64, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, max: max, window: window, now: time.Now}
}

// Allow counts a hit for key and reports whether it is still within the limit.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit: %w", err)
	}
	return incr.Val() <= l.max, nil
}

func (l *RateLimiter) key(key string) string {
	start := l.now().Truncate(l.window).Unix()
	return "ratelimit:" + key + ":" + strconv.FormatInt(start, 10)
}
