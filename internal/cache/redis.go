package cache

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/squadup/squadup-backend/internal/config"
)

// RedisCache is the read accelerator in front of the authoritative store.
// Every entry is TTL-bound; the store never depends on it for correctness.
type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

// Get returns the cached string, or "" on a miss. A miss is not an error.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	return c.Client.Del(ctx, keys...).Err()
}

// DelByPrefix removes every key under prefix using a SCAN iterator, so a
// coarse invalidation never blocks Redis the way KEYS would.
func (c *RedisCache) DelByPrefix(ctx context.Context, prefix string) error {
	iter := c.Client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// KeyForProfile generates the cache key for one (user, game) profile.
func (c *RedisCache) KeyForProfile(userID uint64, game string) string {
	return fmt.Sprintf("profile:%d:%s", userID, game)
}

// SearchPrefix is the invalidation prefix covering every cached search result
// for a (user, game), regardless of filters.
func (c *RedisCache) SearchPrefix(userID uint64, game string) string {
	return fmt.Sprintf("search:%d:%s:", userID, game)
}

// KeyForSearch generates the cache key for one search-result page.
func (c *RedisCache) KeyForSearch(userID uint64, game, filterHash string) string {
	return c.SearchPrefix(userID, game) + filterHash
}

// KeyForSubscription generates the cache key for a subscription-gate check.
func (c *RedisCache) KeyForSubscription(userID uint64, game string) string {
	return fmt.Sprintf("subscription:%d:%s", userID, game)
}

// FilterHash folds a search filter tuple into a short stable key segment.
func FilterHash(rating, position, region string, limit int) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%d", rating, position, region, limit)
	return fmt.Sprintf("%x", h.Sum64())
}
