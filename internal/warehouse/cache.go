package warehouse

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Cache holds serialized query results keyed by parameter set. Entries expire
// by age only; there is no explicit invalidation. The memory implementation
// below is the default, a Redis-backed one lives in clients/redis.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
}

// cacheKey builds a deterministic key from the query kind and its parameters.
func cacheKey(kind string, parts ...string) string {
	return "dash:" + kind + "|" + strings.Join(parts, "|")
}

func conversationsCacheKey(limit int, product string) string {
	return cacheKey("conversations", fmt.Sprintf("limit=%d", limit), "product="+product)
}

func topicsCacheKey(chatID string) string {
	return cacheKey("topics", "chat="+chatID)
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	val       []byte
	expiresAt time.Time
}

func NewMemoryCache() Cache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.val, true
}

func (c *memoryCache) Set(_ context.Context, key string, val []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.entries[key] = memoryEntry{val: val, expiresAt: now.Add(ttl)}
	for k, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, k)
		}
	}
}
