package ports

import (
	"context"

	"shipment-tracking-service/internal/domain"
)

// LookupCache keeps a recent copy of the status tables so that tracking
// requests do not reload them every time. Expiry is owned by the cache.
type LookupCache interface {
	// Return the cached tables; ok is false on a miss.
	Get(ctx context.Context) (tables domain.StatusTables, ok bool, err error)
	Put(ctx context.Context, tables domain.StatusTables) error
	// Drop the cached tables so that the next Get misses.
	Invalidate(ctx context.Context) error
}
