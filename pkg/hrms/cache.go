package hrms

import (
	"context"
	"sync"
	"time"
)

// FetchFunc loads the value for a cache key.
type FetchFunc func(ctx context.Context) (interface{}, error)

// Snapshot is a point-in-time view of a cache entry.
type Snapshot struct {
	Data      interface{}
	Err       error
	Loading   bool
	UpdatedAt time.Time
}

type cacheEntry struct {
	data      interface{}
	err       error
	loading   bool
	updatedAt time.Time
}

// inflightCall tracks a single-flighted fetch so concurrent callers on the
// same key share one network call.
type inflightCall struct {
	done chan struct{}
	data interface{}
	err  error
}

// Cache is a keyed in-memory store of fetched resources. Entries have no
// TTL-based eviction: staleness is exposed as a derived property and entries
// are only removed by explicit invalidation.
//
// A Cache is an explicitly constructed value, not a package-level singleton,
// so tests can instantiate isolated instances.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*cacheEntry
	inflight map[string]*inflightCall

	// generations guard against a stale fetch resurrecting an invalidated
	// entry: a fetch only writes back if no invalidation happened since it
	// started.
	generations map[string]uint64

	now func() time.Time
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries:     make(map[string]*cacheEntry),
		inflight:    make(map[string]*inflightCall),
		generations: make(map[string]uint64),
		now:         time.Now,
	}
}

// Lookup returns a snapshot of the entry for key.
func (c *Cache) Lookup(key string) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return Snapshot{}, false
	}
	return Snapshot{Data: e.data, Err: e.err, Loading: e.loading, UpdatedAt: e.updatedAt}, true
}

// Set seeds or overwrites the entry for key.
func (c *Cache) Set(key string, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{data: data, updatedAt: c.now()}
}

// Invalidate deletes the entry for key. Any fetch already in flight for the
// key is detached: it still completes for its waiters but will not write
// back, so no reader can observe the pre-invalidation value afterwards.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	delete(c.inflight, key)
	c.generations[key]++
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// fetch runs fn for key with single-flight de-duplication. When force is
// false and a settled entry exists, the cached result is returned without a
// network call.
func (c *Cache) fetch(ctx context.Context, key string, fn FetchFunc, force bool) (interface{}, error) {
	c.mu.Lock()

	if !force {
		if e, ok := c.entries[key]; ok && !e.loading {
			c.mu.Unlock()
			return e.data, e.err
		}
	}

	// Join an in-flight call for the same key rather than issuing a second
	// network request.
	if call, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.data, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	call := &inflightCall{done: make(chan struct{})}
	c.inflight[key] = call
	gen := c.generations[key]

	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry{}
		c.entries[key] = e
	}
	e.loading = true
	c.mu.Unlock()

	data, err := fn(ctx)

	c.mu.Lock()
	if c.inflight[key] == call {
		delete(c.inflight, key)
	}
	if c.generations[key] == gen {
		// The loading flag clears on both the success and failure paths.
		entry, ok := c.entries[key]
		if !ok {
			entry = &cacheEntry{}
			c.entries[key] = entry
		}
		entry.data = data
		entry.err = err
		entry.loading = false
		entry.updatedAt = c.now()
	}
	c.mu.Unlock()

	call.data = data
	call.err = err
	close(call.done)

	return data, err
}

// ResourceOptions configure a cached resource handle.
type ResourceOptions struct {
	// StaleTime is how old an entry may be before IsStale reports true.
	// Zero means any settled entry is considered stale.
	StaleTime time.Duration

	// RefetchOnAccess forces Get to bypass the cached value and refetch.
	RefetchOnAccess bool

	// RefetchInterval enables polling when Poll is started.
	RefetchInterval time.Duration

	// Disabled suppresses all fetching; Get serves only cached data.
	Disabled bool
}

// Resource is a handle over one cache key and its fetch function. Multiple
// resources may share a key; they then share the cached entry and in-flight
// calls.
type Resource struct {
	cache *Cache
	key   string
	fetch FetchFunc
	opts  ResourceOptions
}

// Resource creates a handle for key backed by fetch.
func (c *Cache) Resource(key string, fetch FetchFunc, opts ResourceOptions) *Resource {
	return &Resource{cache: c, key: key, fetch: fetch, opts: opts}
}

// Key returns the resource's cache key.
func (r *Resource) Key() string {
	return r.key
}

// Get returns the resource value, fetching on first use. With
// RefetchOnAccess set it always refetches.
func (r *Resource) Get(ctx context.Context) (interface{}, error) {
	if r.opts.Disabled {
		if snap, ok := r.cache.Lookup(r.key); ok {
			return snap.Data, snap.Err
		}
		return nil, nil
	}
	return r.cache.fetch(ctx, r.key, r.fetch, r.opts.RefetchOnAccess)
}

// Refetch bypasses the cache read and overwrites the entry with a fresh
// result.
func (r *Resource) Refetch(ctx context.Context) (interface{}, error) {
	if r.opts.Disabled {
		return nil, nil
	}
	return r.cache.fetch(ctx, r.key, r.fetch, true)
}

// InvalidateAndRefetch deletes the entry before refetching. Unlike Refetch,
// no reader of the key can observe the old value once this is called, even
// momentarily.
func (r *Resource) InvalidateAndRefetch(ctx context.Context) (interface{}, error) {
	if r.opts.Disabled {
		return nil, nil
	}
	r.cache.Invalidate(r.key)
	return r.cache.fetch(ctx, r.key, r.fetch, true)
}

// Snapshot returns the current cache entry for the resource's key.
func (r *Resource) Snapshot() (Snapshot, bool) {
	return r.cache.Lookup(r.key)
}

// IsStale reports whether the entry is missing or older than StaleTime.
func (r *Resource) IsStale() bool {
	snap, ok := r.cache.Lookup(r.key)
	if !ok {
		return true
	}
	return r.cache.now().Sub(snap.UpdatedAt) > r.opts.StaleTime
}

// Poll refetches on RefetchInterval until the returned stop function is
// called or ctx is cancelled. The ticker is always torn down; stop is
// idempotent. Polling with a zero interval or a disabled resource is a
// no-op.
func (r *Resource) Poll(ctx context.Context) (stop func()) {
	if r.opts.RefetchInterval <= 0 || r.opts.Disabled {
		return func() {}
	}

	done := make(chan struct{})
	var once sync.Once
	stop = func() {
		once.Do(func() { close(done) })
	}

	go func() {
		ticker := time.NewTicker(r.opts.RefetchInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				_, _ = r.Refetch(ctx)
			}
		}
	}()

	return stop
}
