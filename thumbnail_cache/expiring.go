package thumbnail_cache

import (
	"time"

	"github.com/littletreasures/hotel-media-repo/metrics"
	"github.com/patrickmn/go-cache"
)

// ExpiringCache forgets thumbnails a fixed time after they were stored.
type ExpiringCache struct {
	cache *cache.Cache
}

func NewExpiringCache(expiration time.Duration) *ExpiringCache {
	c := &ExpiringCache{cache: cache.New(expiration, expiration*2)}
	c.cache.OnEvicted(func(string, interface{}) {
		recordEvictions("expired", 1)
	})
	metrics.OnBeforeMetricsRequested(metricsName, func() {
		recordSize(c.cache.ItemCount(), c.usedBytes())
	})
	return c
}

func (c *ExpiringCache) Get(name string) ([]byte, bool) {
	item, found := c.cache.Get(name)
	recordLookup(found)
	if !found {
		return nil, false
	}
	return clone(item.([]byte)), true
}

func (c *ExpiringCache) Put(name string, thumbnail []byte) {
	c.cache.Set(name, clone(thumbnail), cache.DefaultExpiration)
}

func (c *ExpiringCache) Reset() {
	c.cache.Flush()
}

func (c *ExpiringCache) Stop() {
	metrics.RemoveListener(metricsName)
}

func (c *ExpiringCache) usedBytes() int64 {
	var size int64 = 0
	for _, entry := range c.cache.Items() {
		size += int64(len(entry.Object.([]byte)))
	}
	return size
}
