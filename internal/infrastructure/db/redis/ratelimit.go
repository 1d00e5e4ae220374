package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const keyPrefix = "ratelimit"

// RateLimitStore is a fixed-window request counter shared by every API
// instance. It satisfies echo's middleware.RateLimiterStore.
// Key format: ratelimit:<identifier>:<window index>
type RateLimitStore struct {
	client *redis.Client
	limit  int64
	window time.Duration
	log    zerolog.Logger
	now    func() time.Time
}

// NewRateLimitStore allows limit requests per identifier per window.
func NewRateLimitStore(client *redis.Client, limit int, window time.Duration, log zerolog.Logger) *RateLimitStore {
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimitStore{
		client: client,
		limit:  int64(limit),
		window: window,
		log:    log,
		now:    time.Now,
	}
}

// Allow counts one request for identifier. Redis errors fail open so an
// unavailable cache never blocks traffic.
func (s *RateLimitStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	key := s.key(identifier, s.now())

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warn().Err(err).Str("identifier", identifier).Msg("rate limit check failed, allowing request")
		return true, nil
	}

	return incr.Val() <= s.limit, nil
}

func (s *RateLimitStore) key(identifier string, t time.Time) string {
	windowSecs := int64(s.window / time.Second)
	if windowSecs <= 0 {
		windowSecs = 1
	}
	return fmt.Sprintf("%s:%s:%d", keyPrefix, identifier, t.Unix()/windowSecs)
}
