package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// Redis tests need a live server: ARENA_TEST_REDIS_ADDR=localhost:6379 go test ./pkg/cache
func newTestRedisCache(t *testing.T) *RedisCache {
	t.Helper()
	addr := os.Getenv("ARENA_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ARENA_TEST_REDIS_ADDR not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := NewRedisCache(ctx, RedisConfig{Addr: addr})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisCacheContract(t *testing.T) {
	testContract(t, newTestRedisCache(t))
}

func TestRedisCacheTTL(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()
	key := "test:ttl:" + time.Now().Format(time.RFC3339Nano)

	if err := c.Set(ctx, key, []byte("v"), time.Second); err != nil {
		t.Fatal(err)
	}
	ttl, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		t.Fatal(err)
	}
	if ttl <= 0 || ttl > time.Second {
		t.Errorf("TTL = %v, want (0, 1s]", ttl)
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	_, err := NewRedisCache(context.Background(), RedisConfig{URL: "http://not-redis"})
	if err == nil {
		t.Error("expected error for non-redis URL")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	// Port 1 is reserved and refuses connections.
	_, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1"})
	if err == nil {
		t.Fatal("expected connection error")
	}
}
