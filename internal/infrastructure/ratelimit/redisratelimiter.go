package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts attempts in one Redis sorted set per window, scored
// by attempt time, so old attempts age out of the window on their own.
type RedisLimiter struct {
	client *redis.Client
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limits Limits) (bool, error) {
	now := time.Now()

	windows := []struct {
		span time.Duration
		max  int
	}{
		{time.Minute, limits.PerMinute},
		{time.Hour, limits.PerHour},
	}

	for _, w := range windows {
		if w.max <= 0 {
			continue
		}

		ok, err := l.slide(ctx, key, w.span, w.max, now)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// slide records the attempt and reports whether the window still had room
// before it. Entries older than the window are dropped first, all in one
// pipeline round trip.
func (l *RedisLimiter) slide(ctx context.Context, key string, span time.Duration, max int, now time.Time) (bool, error) {
	bucket := fmt.Sprintf("ratelimit:%s:%s", key, span)
	cutoff := now.Add(-span).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, bucket, "0", fmt.Sprintf("%d", cutoff))
	inWindow := pipe.ZCard(ctx, bucket)
	pipe.ZAdd(ctx, bucket, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	pipe.Expire(ctx, bucket, span+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to update rate limit window: %w", err)
	}

	return inWindow.Val() < int64(max), nil
}
