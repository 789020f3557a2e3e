package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/ports"
)

const statusTablesKey = "status_tables"

// MemoryLookupCache is an in-process cache for the status lookup tables.
type MemoryLookupCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

var _ ports.LookupCache = (*MemoryLookupCache)(nil)

func NewMemoryLookupCache(ttl time.Duration) *MemoryLookupCache {
	return &MemoryLookupCache{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (c *MemoryLookupCache) Get(ctx context.Context) (domain.StatusTables, bool, error) {
	v, ok := c.cache.Get(statusTablesKey)
	if !ok {
		return domain.StatusTables{}, false, nil
	}
	tables, ok := v.(domain.StatusTables)
	if !ok {
		c.cache.Delete(statusTablesKey)
		return domain.StatusTables{}, false, nil
	}
	return cloneTables(tables), true, nil
}

func (c *MemoryLookupCache) Put(ctx context.Context, tables domain.StatusTables) error {
	c.cache.Set(statusTablesKey, cloneTables(tables), c.ttl)
	return nil
}

func (c *MemoryLookupCache) Invalidate(ctx context.Context) error {
	c.cache.Delete(statusTablesKey)
	return nil
}

func cloneTables(t domain.StatusTables) domain.StatusTables {
	return domain.StatusTables{
		Inspection: append([]domain.InspectionStatus(nil), t.Inspection...),
		Shipment:   append([]domain.ShipmentStatus(nil), t.Shipment...),
	}
}
