package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
	apperrors "github.com/openamr/amr/pkg/errors"
	"github.com/openamr/amr/pkg/types/mo"
)

// ResolutionCache stores resolved organism codes in Redis. It implements the
// application resolve.Cache interface. Entries expire after the configured
// TTL so taxonomy updates eventually propagate.
type ResolutionCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger logging.Logger
}

// NewResolutionCache builds a cache over an established client.
func NewResolutionCache(client *redis.Client, prefix string, ttl time.Duration, log logging.Logger) *ResolutionCache {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &ResolutionCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: log.Named("resolution_cache"),
	}
}

// Get returns the cached code for key, reporting a miss when absent.
func (c *ResolutionCache) Get(ctx context.Context, key string) (mo.Code, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return mo.CodeUnknown, false, nil
	}
	if err != nil {
		return mo.CodeUnknown, false, apperrors.Wrap(err, apperrors.CodeCacheError, "cache get failed")
	}
	return mo.Code(val), true, nil
}

// Set stores the code under key with the cache TTL.
func (c *ResolutionCache) Set(ctx context.Context, key string, code mo.Code) error {
	if err := c.client.Set(ctx, c.prefix+key, string(code), c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "cache set failed")
	}
	return nil
}

// Flush removes all entries under the cache prefix. Used after reseeding the
// taxonomy table.
func (c *ResolutionCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "cache scan failed")
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "cache flush failed")
	}
	c.logger.Debug("cache flushed", logging.Int("keys", len(keys)))
	return nil
}
