package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/platform/obs"
	"shipment-tracking-service/internal/ports"
)

// DefaultRedisKey is where the status tables are stored unless overridden.
const DefaultRedisKey = "tracking:status_tables"

// RedisLookupCache shares the status lookup tables between service
// instances. Values are stored as JSON with a TTL.
type RedisLookupCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

var _ ports.LookupCache = (*RedisLookupCache)(nil)

func NewRedisLookupCache(client *redis.Client, ttl time.Duration) *RedisLookupCache {
	return &RedisLookupCache{client: client, key: DefaultRedisKey, ttl: ttl}
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}

	return client, nil
}

func (c *RedisLookupCache) Get(ctx context.Context) (_ domain.StatusTables, _ bool, err error) {
	defer obs.Time(ctx, "lookup.cache.redis.Get")(&err)

	if c.client == nil {
		return domain.StatusTables{}, false, errors.New("lookup cache: redis client is nil")
	}

	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.StatusTables{}, false, nil
	}
	if err != nil {
		return domain.StatusTables{}, false, fmt.Errorf("lookup cache: get %q: %w", c.key, err)
	}

	var tables domain.StatusTables
	if err := json.Unmarshal(data, &tables); err != nil {
		return domain.StatusTables{}, false, fmt.Errorf("lookup cache: decode %q: %w", c.key, err)
	}

	return tables, true, nil
}

func (c *RedisLookupCache) Put(ctx context.Context, tables domain.StatusTables) (err error) {
	defer obs.Time(ctx, "lookup.cache.redis.Put")(&err)

	if c.client == nil {
		return errors.New("lookup cache: redis client is nil")
	}

	data, err := json.Marshal(tables)
	if err != nil {
		return fmt.Errorf("lookup cache: encode: %w", err)
	}

	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("lookup cache: set %q: %w", c.key, err)
	}

	return nil
}

func (c *RedisLookupCache) Invalidate(ctx context.Context) (err error) {
	defer obs.Time(ctx, "lookup.cache.redis.Invalidate")(&err)

	if c.client == nil {
		return errors.New("lookup cache: redis client is nil")
	}

	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("lookup cache: delete %q: %w", c.key, err)
	}

	return nil
}
