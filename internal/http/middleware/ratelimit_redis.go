package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// RedisWindow is a sliding-window limiter shared by every instance pointed at
// the same Redis. Each key is a sorted set of request timestamps; entries
// older than the window are trimmed before counting. Redis errors fail open.
type RedisWindow struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

// NewRedisWindow allows at most limit requests per key within window. limit
// is coerced to at least 1.
func NewRedisWindow(client *redis.Client, limit int, window time.Duration) *RedisWindow {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RedisWindow{client: client, limit: int64(limit), window: window, prefix: "storefront:ratelimit:"}
}

// Allow records a request for key and reports whether it fits the window.
func (w *RedisWindow) Allow(ctx context.Context, key string) bool {
	now := time.Now()
	rk := w.prefix + key
	floor := strconv.FormatInt(now.Add(-w.window).UnixMicro(), 10)

	var card *redis.IntCmd
	_, err := w.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRemRangeByScore(ctx, rk, "0", "("+floor)
		card = p.ZCard(ctx, rk)
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("rate limit backend unavailable; allowing request")
		return true
	}
	if card.Val() >= w.limit {
		return false
	}

	_, err = w.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZAdd(ctx, rk, &redis.Z{
			Score:  float64(now.UnixMicro()),
			Member: strconv.FormatInt(now.UnixNano(), 10),
		})
		p.Expire(ctx, rk, 2*w.window)
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("rate limit record failed")
	}
	return true
}
