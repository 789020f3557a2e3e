package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisLookupCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	c := NewRedisLookupCache(client, 5*time.Minute)

	if _, ok, err := c.Get(ctx); ok || err != nil {
		t.Fatalf("empty cache Get = ok %v, err %v", ok, err)
	}

	if err := c.Put(ctx, sampleTables()); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if ttl := mr.TTL(DefaultRedisKey); ttl != 5*time.Minute {
		t.Fatalf("ttl = %v, want 5m", ttl)
	}

	got, ok, err := c.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	if len(got.Inspection) != 2 || got.Inspection[1].Value != "approved" || got.Shipment[0].Label != "En tránsito" {
		t.Fatalf("unexpected tables: %+v", got)
	}

	mr.FastForward(6 * time.Minute)
	if _, ok, _ := c.Get(ctx); ok {
		t.Fatal("expected miss after ttl")
	}
}

func TestRedisLookupCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	c := NewRedisLookupCache(client, time.Minute)

	if err := c.Put(ctx, sampleTables()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if mr.Exists(DefaultRedisKey) {
		t.Fatal("key still present after Invalidate")
	}
	if _, ok, _ := c.Get(ctx); ok {
		t.Fatal("expected miss after Invalidate")
	}
	// Invalidating an empty cache is not an error.
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("second Invalidate: %v", err)
	}
}

func TestRedisLookupCacheCorruptValue(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	c := NewRedisLookupCache(client, time.Minute)

	if err := mr.Set(DefaultRedisKey, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, ok, err := c.Get(ctx); err == nil || ok {
		t.Fatalf("Get = ok %v, err %v; want decode error", ok, err)
	}
}

func TestNewRedisClientPing(t *testing.T) {
	mr, _ := newTestRedis(t)
	addr := mr.Addr()

	client, err := NewRedisClient(context.Background(), addr, "")
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	_ = client.Close()

	mr.Close()
	if _, err := NewRedisClient(context.Background(), addr, ""); err == nil {
		t.Fatal("expected ping error against a stopped server")
	}
}
