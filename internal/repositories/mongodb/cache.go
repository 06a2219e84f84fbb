package mongodb

import (
	"context"
	"time"
)

// CacheService abstracts the optional read-through cache used by
// repositories. A nil CacheService disables caching entirely.
type CacheService interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
}
