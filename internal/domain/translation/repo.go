package translation

import (
	"context"
	"errors"
)

// ErrEntryNotFound signals a cache miss.
var ErrEntryNotFound = errors.New("translation cache entry not found")

// Repository is the narrow key-value view of the translations collection.
// Entries are never deleted; Put overwrites in place.
type Repository interface {
	Get(ctx context.Context, id string) (*CacheEntry, error)
	Put(ctx context.Context, e *CacheEntry) error
}
