package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	leadUC "bureau/internal/application/lead/usecases"
	"bureau/internal/shared/config"
)

// FixedWindowLimiter throttles per-client intake with a redis counter per
// (key, window) pair. The counter is INCRed and given an explicit expiry on
// first use, so a window cleans itself up and a fresh one starts at zero;
// counters never accumulate across windows or survive a process restart the
// way an in-process map would.
type FixedWindowLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int
}

func NewFixedWindowLimiter(client *redis.Client, cfg *config.LeadIntakeConfig) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		client: client,
		window: time.Duration(cfg.WindowSeconds) * time.Second,
		limit:  cfg.RequestsPerWindow,
	}
}

var _ leadUC.RateLimiter = (*FixedWindowLimiter)(nil)

func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.windowKey(key, time.Now())

	pipe := l.client.Pipeline()
	count := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return count.Val() <= int64(l.limit), nil
}

// Reset clears all windows for a key.
func (l *FixedWindowLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("leadintake:%s:*", key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}

	return nil
}

func (l *FixedWindowLimiter) windowKey(key string, now time.Time) string {
	windowStart := now.Truncate(l.window).Unix()
	return fmt.Sprintf("leadintake:%s:%d", key, windowStart)
}
