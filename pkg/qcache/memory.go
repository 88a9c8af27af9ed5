package qcache

import (
	"context"
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync"
	"golang.org/x/sync/singleflight"
)

// memoryCache is the process-wide default backend. Concurrent readers
// of the same key share one in-flight fetch through singleflight; the
// last write to a key wins. Generations fence invalidations against
// in-flight fetches: a fetch that started before an invalidation must
// not reinstate the value it read.
type memoryCache struct {
	entries *xsync.MapOf[string, any]
	flights singleflight.Group

	mu   sync.Mutex
	gens map[string]uint64
}

func NewMemoryCache() *memoryCache {
	return &memoryCache{
		entries: xsync.NewMapOf[any](),
		gens:    map[string]uint64{},
	}
}

// generation covers both the key and its tag, so InvalidateTag also
// fences fetches keyed under that tag.
func (c *memoryCache) generation(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[key.String()] + c.gens[key.Tag]
}

func (c *memoryCache) GetOrFetch(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	if v, ok := c.entries.Load(key.String()); ok {
		return v, nil
	}

	v, err, _ := c.flights.Do(key.String(), func() (any, error) {
		if v, ok := c.entries.Load(key.String()); ok {
			return v, nil
		}

		gen := c.generation(key)
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		if c.generation(key) == gen {
			c.entries.Store(key.String(), v)

			// An invalidation between the check and the store bumped
			// the generation first, so re-checking catches it.
			if c.generation(key) != gen {
				c.entries.Delete(key.String())
			}
		}

		return v, nil
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (c *memoryCache) Invalidate(ctx context.Context, keys ...Key) {
	c.mu.Lock()
	for _, key := range keys {
		c.gens[key.String()]++
	}
	c.mu.Unlock()

	for _, key := range keys {
		c.flights.Forget(key.String())
		c.entries.Delete(key.String())
	}
}

func (c *memoryCache) InvalidateTag(ctx context.Context, tag string) {
	c.mu.Lock()
	c.gens[tag]++
	c.mu.Unlock()

	c.entries.Range(func(k string, _ any) bool {
		if k == tag || strings.HasPrefix(k, tag+"/") {
			c.flights.Forget(k)
			c.entries.Delete(k)
		}

		return true
	})
}
