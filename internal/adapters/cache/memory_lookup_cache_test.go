package cache

import (
	"context"
	"testing"
	"time"

	"shipment-tracking-service/internal/domain"
)

func sampleTables() domain.StatusTables {
	return domain.StatusTables{
		Inspection: []domain.InspectionStatus{
			{Value: "received", Order: 2},
			{Value: "approved", Order: 7},
		},
		Shipment: []domain.ShipmentStatus{
			{Value: "in_transit", TrackingPoint: 14, Label: "En tránsito"},
		},
	}
}

func TestMemoryLookupCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryLookupCache(time.Minute)

	if _, ok, err := c.Get(ctx); ok || err != nil {
		t.Fatalf("empty cache Get = ok %v, err %v", ok, err)
	}

	if err := c.Put(ctx, sampleTables()); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := c.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	if len(got.Inspection) != 2 || got.Shipment[0].TrackingPoint != 14 {
		t.Fatalf("unexpected tables: %+v", got)
	}

	// Callers must not be able to change what the cache holds.
	got.Inspection[0].Order = 99
	again, _, _ := c.Get(ctx)
	if again.Inspection[0].Order != 2 {
		t.Fatalf("cached value mutated through returned slice")
	}

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, ok, _ := c.Get(ctx); ok {
		t.Fatal("expected miss after Invalidate")
	}
}

func TestMemoryLookupCacheExpires(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryLookupCache(20 * time.Millisecond)

	if err := c.Put(ctx, sampleTables()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	time.Sleep(40 * time.Millisecond)

	if _, ok, _ := c.Get(ctx); ok {
		t.Fatal("expected entry to expire")
	}
}
