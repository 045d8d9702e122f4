// Package thumb serves resized image variants out of an in-process edge
// cache, rendering on miss and invalidating by source-key tag.
package thumb

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedResponse is one rendered variant as it is replayed on a cache hit.
type CachedResponse struct {
	Body         []byte
	ContentType  string
	CacheControl string
	CacheTag     string
}

// Cache is an LRU edge cache keyed by request identity (path + query) with a
// secondary tag index enabling bulk purge of every variant of one source
// object.
type Cache struct {
	// mu guards both the LRU and the tag index. The eviction callback runs
	// synchronously inside Add, with mu already held, so it touches tags
	// without taking the lock itself.
	mu   sync.Mutex
	lru  *lru.Cache[string, CachedResponse]
	tags map[string]map[string]struct{} // tag -> identity set
}

// NewCache creates a Cache bounded to size entries.
func NewCache(size int) (*Cache, error) {
	c := &Cache{tags: make(map[string]map[string]struct{})}
	l, err := lru.NewWithEvict[string, CachedResponse](size, func(key string, v CachedResponse) {
		c.dropFromTag(v.CacheTag, key)
	})
	if err != nil {
		return nil, err
	}
	c.lru = l
	return c, nil
}

// Get returns the cached variant for identity, if present.
func (c *Cache) Get(identity string) (CachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Get(identity)
}

// Put stores a rendered variant under identity and indexes it by tag.
func (c *Cache) Put(identity string, resp CachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(identity, resp)
	if resp.CacheTag == "" {
		return
	}
	set, ok := c.tags[resp.CacheTag]
	if !ok {
		set = make(map[string]struct{})
		c.tags[resp.CacheTag] = set
	}
	set[identity] = struct{}{}
}

// PurgeTag evicts every variant carrying tag and returns how many were
// removed.
func (c *Cache) PurgeTag(tag string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	set := c.tags[tag]
	n := len(set)
	for identity := range set {
		c.lru.Remove(identity)
	}
	delete(c.tags, tag)
	return n
}

// Len reports the number of cached variants.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// dropFromTag unindexes identity; callers hold mu.
func (c *Cache) dropFromTag(tag, identity string) {
	if set, ok := c.tags[tag]; ok {
		delete(set, identity)
		if len(set) == 0 {
			delete(c.tags, tag)
		}
	}
}
