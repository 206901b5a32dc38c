package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	redislib "github.com/redis/go-redis/v9"

	"github.com/splitpot/splitpot/internal/infrastructure/metrics"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client, nil)
	ctx := context.Background()

	if err := cache.Set(ctx, "snapshot", `{"balances":{}}`, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "snapshot")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != `{"balances":{}}` {
		t.Fatalf("unexpected value: %s", val)
	}

	// Keys are namespaced so other applications on the same Redis
	// can't collide with ours.
	if !mr.Exists("splitpot:snapshot") {
		t.Fatal("expected prefixed key in redis")
	}
}

func TestCacheGetMiss(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client, nil)

	if _, err := cache.Get(context.Background(), "absent"); !errors.Is(err, redislib.Nil) {
		t.Fatalf("expected redis.Nil on miss, got %v", err)
	}
}

func TestCacheExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client, nil)
	ctx := context.Background()

	if err := cache.Set(ctx, "snapshot", "stale", 30*time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(31 * time.Second)

	if _, err := cache.Get(ctx, "snapshot"); err == nil {
		t.Fatal("expected expired key to be gone")
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client, nil)
	ctx := context.Background()

	if err := cache.Set(ctx, "snapshot", "value", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "snapshot"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := cache.Get(ctx, "snapshot"); err == nil {
		t.Fatal("expected error getting deleted key")
	}

	// Deleting an absent key is not an error.
	if err := cache.Delete(ctx, "snapshot"); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}

func TestCacheRecordsHitAndMissMetrics(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	m := metrics.New()
	cache := NewCache(client, m)
	ctx := context.Background()

	if _, err := cache.Get(ctx, "snapshot"); !errors.Is(err, redislib.Nil) {
		t.Fatalf("expected miss, got %v", err)
	}
	if got := testutil.ToFloat64(m.SnapshotCacheMisses); got != 1 {
		t.Fatalf("expected 1 miss, got %v", got)
	}

	if err := cache.Set(ctx, "snapshot", "value", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := cache.Get(ctx, "snapshot"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got := testutil.ToFloat64(m.SnapshotCacheHits); got != 1 {
		t.Fatalf("expected 1 hit, got %v", got)
	}
}
