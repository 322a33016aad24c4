package query

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestKey_EquivalentParamsProduceSameKey(t *testing.T) {
	a := url.Values{}
	a.Set("search", "bob")
	a.Set("page", "2")

	b := url.Values{}
	b.Set("page", "2")
	b.Set("search", "bob")

	if Key("accounts/a1/users", a) != Key("accounts/a1/users", b) {
		t.Error("same params in different insertion order should key identically")
	}
	if Key("accounts/a1/users", nil) != "accounts/a1/users" {
		t.Error("no params should key to the bare operation")
	}
}

func TestCache_DoCachesUntilTTL(t *testing.T) {
	now := time.Unix(1000, 0)
	cache := NewCache(WithClock(func() time.Time { return now }))

	var fetches atomic.Int32
	fetch := func(ctx context.Context) (string, error) {
		fetches.Add(1)
		return "value", nil
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		v, err := Lookup(ctx, cache, "op", TTLList, fetch)
		if err != nil || v != "value" {
			t.Fatalf("Lookup() = %q, %v", v, err)
		}
	}
	if got := fetches.Load(); got != 1 {
		t.Fatalf("fetches = %d, want 1 (cached)", got)
	}

	// Step past the list staleness window: next read refetches.
	now = now.Add(TTLList + time.Second)
	if _, err := Lookup(ctx, cache, "op", TTLList, fetch); err != nil {
		t.Fatal(err)
	}
	if got := fetches.Load(); got != 2 {
		t.Errorf("fetches after TTL = %d, want 2", got)
	}
}

func TestCache_PinnedEntriesNeverExpire(t *testing.T) {
	now := time.Unix(1000, 0)
	cache := NewCache(WithClock(func() time.Time { return now }))

	var fetches atomic.Int32
	ctx := context.Background()
	fetch := func(ctx context.Context) (string, error) {
		fetches.Add(1)
		return "me", nil
	}

	if _, err := Lookup(ctx, cache, "auth/me", TTLPinned, fetch); err != nil {
		t.Fatal(err)
	}
	now = now.Add(24 * time.Hour)
	if _, err := Lookup(ctx, cache, "auth/me", TTLPinned, fetch); err != nil {
		t.Fatal(err)
	}
	if got := fetches.Load(); got != 1 {
		t.Errorf("fetches = %d, want 1 (pinned entry)", got)
	}

	cache.Invalidate("auth/me")
	if _, err := Lookup(ctx, cache, "auth/me", TTLPinned, fetch); err != nil {
		t.Fatal(err)
	}
	if got := fetches.Load(); got != 2 {
		t.Errorf("fetches after invalidation = %d, want 2", got)
	}
}

func TestCache_ConcurrentCallersShareOneFetch(t *testing.T) {
	cache := NewCache()

	var fetches atomic.Int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) (int, error) {
		fetches.Add(1)
		<-release
		return 42, nil
	}

	const callers = 16
	var wg sync.WaitGroup
	results := make([]int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Lookup(context.Background(), cache, "dedup", TTLList, fetch)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = v
		}(i)
	}

	// Let all goroutines pile onto the key before the fetch resolves.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := fetches.Load(); got != 1 {
		t.Errorf("fetches = %d, want 1 (deduplicated)", got)
	}
	for i, v := range results {
		if v != 42 {
			t.Fatalf("caller %d got %d, want 42", i, v)
		}
	}
}

func TestCache_FetchErrorsAreNotCached(t *testing.T) {
	cache := NewCache()
	boom := errors.New("boom")

	var fetches atomic.Int32
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := Lookup(ctx, cache, "op", TTLList, func(ctx context.Context) (string, error) {
			fetches.Add(1)
			return "", boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	}
	if got := fetches.Load(); got != 2 {
		t.Errorf("fetches = %d, want 2 (errors not cached)", got)
	}
}

func TestCache_ExpiredDeleteDoesNotDropConcurrentRefresh(t *testing.T) {
	// The clock injects a refresh of the key at the exact point lookup
	// decides the old entry is expired, standing in for a concurrent
	// writer. The stale-entry delete must leave the fresh value alone.
	start := time.Unix(1000, 0)
	current := start
	var cache *Cache
	injected := false
	cache = NewCache(WithClock(func() time.Time {
		if !injected && current.After(start.Add(TTLList)) {
			injected = true
			cache.Put("op", "fresh", TTLPinned)
		}
		return current
	}))

	cache.Put("op", "stale", TTLList)
	current = current.Add(TTLList + time.Second)

	// This read observes the stale entry and goes down the delete path
	// while the refresh lands.
	if _, ok := cache.lookup("op"); ok {
		t.Fatal("stale read should miss")
	}

	v, ok := cache.lookup("op")
	if !ok {
		t.Fatal("refreshed entry was deleted by the stale-entry cleanup")
	}
	if v != "fresh" {
		t.Errorf("lookup() = %v, want %q", v, "fresh")
	}
}

func TestCache_InvalidatePrefix(t *testing.T) {
	cache := NewCache()
	cache.Put("accounts/a1/entities?page=2", 1, TTLList)
	cache.Put("accounts/a1/entities", 2, TTLList)
	cache.Put("accounts/a2/entities", 3, TTLList)

	cache.InvalidatePrefix("accounts/a1/entities")

	if _, ok := cache.lookup("accounts/a1/entities?page=2"); ok {
		t.Error("filtered page should be invalidated")
	}
	if _, ok := cache.lookup("accounts/a1/entities"); ok {
		t.Error("bare list key should be invalidated")
	}
	if _, ok := cache.lookup("accounts/a2/entities"); !ok {
		t.Error("other account's list should survive")
	}
}
