// Package query implements the keyed read-through cache shared by all
// BillMate read operations, plus the small pieces of list-view state
// (debounced search, pagination) that sit on top of it.
package query

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Staleness policies. Identity data only moves on sign-in/out, list data
// drifts slowly, invitations are the most volatile collection.
const (
	// TTLPinned marks an entry that never expires; only explicit
	// invalidation removes it.
	TTLPinned time.Duration = 0

	// TTLList is the staleness window for entity/user/role lists.
	TTLList = 5 * time.Minute

	// TTLInvitations is the staleness window for invitation data.
	TTLInvitations = 30 * time.Second
)

type entry struct {
	value     any
	expiresAt time.Time // zero for pinned entries
}

// Cache is a keyed read-through cache with per-entry TTL and in-flight
// request deduplication. It is an explicit, constructed object: callers
// hold their own instance instead of sharing package state.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
	now     func() time.Time
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithClock overrides the cache's time source. Tests use it to step
// through staleness windows.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCache creates an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key builds the canonical cache key for an operation and its normalized
// parameters. url.Values.Encode sorts by key, so two equivalent parameter
// sets produce the same string.
func Key(op string, params url.Values) string {
	if len(params) == 0 {
		return op
	}
	return op + "?" + params.Encode()
}

// Do returns the cached value for key when fresh, otherwise runs fetch
// and stores its result with the given TTL. Concurrent callers with the
// same key share a single in-flight fetch.
func (c *Cache) Do(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) (any, error)) (any, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Double-check: another caller may have filled the entry while
		// this one waited on the group.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, v, ttl)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Put stores a value directly, bypassing fetch. Used to seed the identity
// entry from a sign-in response or a persisted snapshot.
func (c *Cache) Put(key string, value any, ttl time.Duration) {
	c.store(key, value, ttl)
}

// Invalidate removes a single entry.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidatePrefix removes every entry whose key starts with prefix.
// Mutations use it to drop all cached pages/filters of a list operation.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

func (c *Cache) lookup(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent store may have
		// refreshed the entry since the read above.
		if e, ok := c.entries[key]; ok && !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *Cache) store(key string, value any, ttl time.Duration) {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

// Lookup is the typed wrapper around Cache.Do.
func Lookup[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.Do(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
