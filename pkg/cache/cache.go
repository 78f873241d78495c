package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLAdList  = 30 * time.Second // ad listings churn quickly
	TTLAd      = 2 * time.Minute
	TTLProfile = 5 * time.Minute
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixAdList  = "ads:list:"
	PrefixAd      = "ads:id:"
	PrefixProfile = "member:profile:"
)

// Service redis cache service interface. Every method is a no-op or a
// miss when redis is not configured, so callers never branch on it.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// Ad listing cache, keyed by the serialized filter set
	GetAdList(ctx context.Context, filterKey string) ([]byte, error)
	SetAdList(ctx context.Context, filterKey string, data interface{}) error
	InvalidateAdLists(ctx context.Context) error

	// Single ad cache
	GetAd(ctx context.Context, adID uint64) ([]byte, error)
	SetAd(ctx context.Context, adID uint64, data interface{}) error
	InvalidateAd(ctx context.Context, adID uint64) error

	// Public member profile cache
	GetProfile(ctx context.Context, memberID uint64) ([]byte, error)
	SetProfile(ctx context.Context, memberID uint64, data interface{}) error
	InvalidateProfile(ctx context.Context, memberID uint64) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a redis-backed cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a redis client is attached
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping verifies redis connectivity
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads a value from the cache into dest
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return redis.Nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set stores a value in the cache
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // silently skip without redis
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes keys from the cache
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) getBytes(ctx context.Context, key string) ([]byte, error) {
	if c.client == nil {
		return nil, redis.Nil
	}
	return c.client.Get(ctx, key).Bytes()
}

func (c *redisCache) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) deleteByPattern(ctx context.Context, pattern string) error {
	if c.client == nil {
		return nil
	}
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// GetAdList reads a cached ad list page
func (c *redisCache) GetAdList(ctx context.Context, filterKey string) ([]byte, error) {
	return c.getBytes(ctx, PrefixAdList+filterKey)
}

// SetAdList caches one ad list page
func (c *redisCache) SetAdList(ctx context.Context, filterKey string, data interface{}) error {
	return c.setJSON(ctx, PrefixAdList+filterKey, data, TTLAdList)
}

// InvalidateAdLists drops every cached ad list page
func (c *redisCache) InvalidateAdLists(ctx context.Context) error {
	return c.deleteByPattern(ctx, PrefixAdList+"*")
}

// GetAd reads a cached ad
func (c *redisCache) GetAd(ctx context.Context, adID uint64) ([]byte, error) {
	return c.getBytes(ctx, fmt.Sprintf("%s%d", PrefixAd, adID))
}

// SetAd caches a single ad
func (c *redisCache) SetAd(ctx context.Context, adID uint64, data interface{}) error {
	return c.setJSON(ctx, fmt.Sprintf("%s%d", PrefixAd, adID), data, TTLAd)
}

// InvalidateAd drops a cached ad
func (c *redisCache) InvalidateAd(ctx context.Context, adID uint64) error {
	return c.Delete(ctx, fmt.Sprintf("%s%d", PrefixAd, adID))
}

// GetProfile reads a cached public member profile
func (c *redisCache) GetProfile(ctx context.Context, memberID uint64) ([]byte, error) {
	return c.getBytes(ctx, fmt.Sprintf("%s%d", PrefixProfile, memberID))
}

// SetProfile caches a public member profile
func (c *redisCache) SetProfile(ctx context.Context, memberID uint64, data interface{}) error {
	return c.setJSON(ctx, fmt.Sprintf("%s%d", PrefixProfile, memberID), data, TTLProfile)
}

// InvalidateProfile drops a cached public member profile
func (c *redisCache) InvalidateProfile(ctx context.Context, memberID uint64) error {
	return c.Delete(ctx, fmt.Sprintf("%s%d", PrefixProfile, memberID))
}
