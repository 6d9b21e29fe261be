package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles driver profile caching in Redis. Profiles are immutable
// except for the session binding, so a short TTL plus invalidation on rebind
// keeps the cache honest.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// DriverCacheTTL bounds staleness after a rebind races a cached read.
const DriverCacheTTL = 60 * time.Second

const driverCachePrefix = "cache:driver:chat:"

// CachedDriver represents a cached driver profile.
type CachedDriver struct {
	ChatID   int64  `json:"chat_id"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
	Vehicle  string `json:"vehicle"`
}

// GetDriver retrieves a driver profile from cache. A nil result with nil
// error is a cache miss.
func (s *CacheStore) GetDriver(ctx context.Context, chatID int64) (*CachedDriver, error) {
	data, err := s.client.Get(ctx, driverKey(chatID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var driver CachedDriver
	if err := json.Unmarshal(data, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

// SetDriver stores a driver profile in cache.
func (s *CacheStore) SetDriver(ctx context.Context, driver *CachedDriver) error {
	data, err := json.Marshal(driver)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, driverKey(driver.ChatID), data, DriverCacheTTL).Err()
}

// InvalidateDriver removes a driver profile from cache.
func (s *CacheStore) InvalidateDriver(ctx context.Context, chatID int64) error {
	return s.client.Del(ctx, driverKey(chatID)).Err()
}

func driverKey(chatID int64) string {
	return fmt.Sprintf("%s%d", driverCachePrefix, chatID)
}
