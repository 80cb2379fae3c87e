package thumbnail_cache

import (
	"sync"

	"github.com/littletreasures/hotel-media-repo/metrics"
)

// MemoryCache keeps every thumbnail until Reset. It never evicts, so it grows
// with the number of distinct names requested.
type MemoryCache struct {
	entries map[string][]byte
	rwLock  *sync.RWMutex
}

func NewMemoryCache() *MemoryCache {
	memCache := &MemoryCache{
		entries: make(map[string][]byte),
		rwLock:  &sync.RWMutex{},
	}
	metrics.OnBeforeMetricsRequested(metricsName, func() {
		recordSize(memCache.ItemCount(), memCache.UsedBytes())
	})
	return memCache
}

func (c *MemoryCache) Get(name string) ([]byte, bool) {
	c.rwLock.RLock()
	b, ok := c.entries[name]
	c.rwLock.RUnlock()

	recordLookup(ok)
	if !ok {
		return nil, false
	}
	return clone(b), true
}

func (c *MemoryCache) Put(name string, thumbnail []byte) {
	b := clone(thumbnail)
	c.rwLock.Lock()
	c.entries[name] = b
	c.rwLock.Unlock()
}

// flush drops every entry and returns how many were dropped.
func (c *MemoryCache) flush() int {
	c.rwLock.Lock()
	n := len(c.entries)
	c.entries = make(map[string][]byte)
	c.rwLock.Unlock()
	return n
}

func (c *MemoryCache) Reset() {
	c.flush()
}

func (c *MemoryCache) Stop() {
	metrics.RemoveListener(metricsName)
}

func (c *MemoryCache) ItemCount() int {
	c.rwLock.RLock()
	defer c.rwLock.RUnlock()
	return len(c.entries)
}

func (c *MemoryCache) UsedBytes() int64 {
	c.rwLock.RLock()
	defer c.rwLock.RUnlock()
	var size int64 = 0
	for _, b := range c.entries {
		size += int64(len(b))
	}
	return size
}
