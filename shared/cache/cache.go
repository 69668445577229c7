package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hms/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	scanBatchSize         = 100
)

// Nil is returned (wrapped) by Get on a cache miss.
var Nil = redis.Nil

type RedisCache interface {
	Save(ctx context.Context, key string, value any, ttlSeconds int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
	// Increment bumps an integer counter. The TTL starts with the first hit.
	Increment(ctx context.Context, key string, ttlSeconds int) (int, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Clear deletes every key matching pattern.
func (c *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, pattern)

	iter := c.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	keys := []string{}

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err = iter.Err(); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to scan cache keys")

		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err = c.client.Del(ctx, keys...).Err(); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to clear cache")

		return fmt.Errorf("failed to clear cache: %w", err)
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	if err = c.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

func (c *redisCache) Increment(ctx context.Context, key string, ttlSeconds int) (count int, err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	value, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	if value == 1 {
		if err = c.client.Expire(ctx, key, time.Duration(ttlSeconds)*time.Second).Err(); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to set counter expiry")

			return 0, fmt.Errorf("failed to set counter expiry: %w", err)
		}
	}

	return int(value), nil
}

// Get decodes the cached JSON into value. *string targets receive the raw value.
func (c *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if target, ok := value.(*string); ok {
		*target = raw

		return nil
	}

	if err = json.Unmarshal([]byte(raw), value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func (c *redisCache) Save(ctx context.Context, key string, value any, ttlSeconds int) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var payload []byte

	switch v := value.(type) {
	case string:
		payload = []byte(v)
	case []byte:
		payload = v
	default:
		if payload, err = json.Marshal(v); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to marshal cache")

			return fmt.Errorf("failed to marshal cache value: %w", err)
		}
	}

	if err = c.client.Set(ctx, key, payload, time.Duration(ttlSeconds)*time.Second).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("key", key).Msg("cache saved")

	return nil
}
