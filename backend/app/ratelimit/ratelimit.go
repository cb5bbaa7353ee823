// Package ratelimit throttles failed login attempts per username with a
// fixed window. It only slows online password guessing; it is not a session
// or revocation store.
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter interface {
	// Allow reports whether another attempt for key may proceed.
	Allow(ctx context.Context, key string) (bool, error)
	// RecordFailure counts a failed attempt against key.
	RecordFailure(ctx context.Context, key string) error
	// Reset clears the counter, called after a successful login.
	Reset(ctx context.Context, key string) error
}

type RedisLimiter struct {
	rdb    *redis.Client
	max    int64
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, maxAttempts int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, max: int64(maxAttempts), window: window}
}

func key(username string) string { return "login_attempts:" + username }

func (l *RedisLimiter) Allow(ctx context.Context, username string) (bool, error) {
	n, err := l.rdb.Get(ctx, key(username)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return n < l.max, nil
}

func (l *RedisLimiter) RecordFailure(ctx context.Context, username string) error {
	pipe := l.rdb.TxPipeline()
	pipe.Incr(ctx, key(username))
	// NX keeps the window fixed from the first failure and also repairs a
	// counter whose expiry was lost, so a key can never lock a username
	// out permanently.
	pipe.ExpireNX(ctx, key(username), l.window)
	_, err := pipe.Exec(ctx)
	return err
}

func (l *RedisLimiter) Reset(ctx context.Context, username string) error {
	return l.rdb.Del(ctx, key(username)).Err()
}
