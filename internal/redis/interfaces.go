package redis

import "context"

// CacheStoreInterface defines the driver cache contract.
// This interface allows for testing with mock implementations.
type CacheStoreInterface interface {
	GetDriver(ctx context.Context, chatID int64) (*CachedDriver, error)
	SetDriver(ctx context.Context, driver *CachedDriver) error
	InvalidateDriver(ctx context.Context, chatID int64) error
}

// Ensure interfaces are satisfied.
var _ CacheStoreInterface = (*CacheStore)(nil)
