package translation

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache stores resolved translations. Callers own its lifecycle: create it,
// Clear it when the dictionary changes, Close it on shutdown.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Clear(ctx context.Context) error
	Close() error
}

// MemoryCache is a size-bounded in-process cache with per-entry expiry.
type MemoryCache struct {
	lru *expirable.LRU[string, string]
}

// NewMemoryCache creates a cache holding at most size entries for ttl each.
// A zero ttl keeps entries until evicted by size.
func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	if size <= 0 {
		size = 1024
	}
	return &MemoryCache{lru: expirable.NewLRU[string, string](size, nil, ttl)}
}

var _ Cache = (*MemoryCache)(nil)

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := c.lru.Get(key)
	return v, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value string) error {
	c.lru.Add(key, value)
	return nil
}

func (c *MemoryCache) Clear(_ context.Context) error {
	c.lru.Purge()
	return nil
}

// Len reports the number of live entries.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}

func (c *MemoryCache) Close() error {
	c.lru.Purge()
	return nil
}
