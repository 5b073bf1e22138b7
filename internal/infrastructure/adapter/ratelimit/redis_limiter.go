package ratelimit

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	coreport "github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"
	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/ratelimit"
	"github.com/redis/go-redis/v9"
)

// slidingWindowScript checks and records an attempt atomically. Old entries
// are pruned, the remaining ones counted, and the attempt is only recorded
// when it fits under the quota.
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call("ZREMRANGEBYSCORE", key, 0, now - window)
local count = redis.call("ZCARD", key)
if count < limit then
	redis.call("ZADD", key, now, ARGV[4])
	redis.call("PEXPIRE", key, window)
	return 1
end
return 0
`)

// RedisLimiter implements the Limiter port against a remote Redis
// sliding-window counter keyed by client address.
type RedisLimiter struct {
	client       *redis.Client
	requests     int
	window       time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	sequence     atomic.Uint64
}

// NewRedisLimiter creates a limiter backed by the given Redis instance
func NewRedisLimiter(
	client *redis.Client,
	requests int,
	window time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) ratelimit.Limiter {
	return &RedisLimiter{
		client:       client,
		requests:     requests,
		window:       window,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Check records an attempt for the key and reports whether it is allowed.
// A failed round trip to Redis is returned as an error so callers can tell
// "over quota" apart from "limiter broken".
func (l *RedisLimiter) Check(ctx context.Context, key string) (bool, error) {
	now := l.timeProvider.Now().UnixMilli()
	member := fmt.Sprintf("%d-%d", now, l.sequence.Add(1))

	result, err := slidingWindowScript.Run(ctx, l.client,
		[]string{"ratelimit:" + key},
		now,
		l.window.Milliseconds(),
		l.requests,
		member,
	).Int()
	if err != nil {
		l.logger.Error("Rate limiter round trip failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return false, err
	}

	allowed := result == 1
	if !allowed {
		l.logger.Warn("Request over quota", map[string]any{
			"key":      key,
			"requests": l.requests,
			"window":   l.window.String(),
		})
	}
	return allowed, nil
}
