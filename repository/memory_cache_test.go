package repository

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_GetSet(t *testing.T) {
	cache := NewMemoryCache(0)
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Fatal("expected miss on empty cache")
	}
	if err := cache.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := cache.Get(ctx, "k")
	if !ok || got != "v" {
		t.Errorf("expected hit with v, got %q %v", got, ok)
	}
}

func TestMemoryCache_Expires(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	_ = cache.Set(ctx, "k", "v")
	now = now.Add(59 * time.Second)
	if _, ok := cache.Get(ctx, "k"); !ok {
		t.Fatal("entry expired early")
	}
	now = now.Add(time.Second)
	if _, ok := cache.Get(ctx, "k"); ok {
		t.Error("expected entry to expire after ttl")
	}
	if cache.Len() != 0 {
		t.Errorf("expired entry not removed, len %d", cache.Len())
	}
}
