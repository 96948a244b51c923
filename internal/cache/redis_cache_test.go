package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCache(rdb, time.Hour), mr
}

func TestRedisCacheSetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "geoip:203.0.113.7", "Norway"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "geoip:203.0.113.7")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "Norway" {
		t.Errorf("got %q, want Norway", got)
	}
}

func TestRedisCacheMissingKey(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get on missing key: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRedisCacheTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}

	mr.FastForward(2 * time.Hour)

	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("value survived past TTL: %q", got)
	}
}
