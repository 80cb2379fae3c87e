package thumbnail_cache

import (
	"github.com/littletreasures/hotel-media-repo/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsName = "thumbnails"

// ThumbnailCache maps image names to encoded thumbnails. Implementations may
// drop any entry at any time; a dropped entry is only visible as a later miss.
// Get and Put are individually safe for concurrent use.
type ThumbnailCache interface {
	Get(name string) ([]byte, bool)
	Put(name string, thumbnail []byte)
	Reset()
	Stop()
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

func recordLookup(found bool) {
	if found {
		metrics.CacheHits.With(prometheus.Labels{"cache": metricsName}).Inc()
	} else {
		metrics.CacheMisses.With(prometheus.Labels{"cache": metricsName}).Inc()
	}
}

func recordSize(items int, bytes int64) {
	metrics.CacheNumItems.With(prometheus.Labels{"cache": metricsName}).Set(float64(items))
	metrics.CacheNumBytes.With(prometheus.Labels{"cache": metricsName}).Set(float64(bytes))
}

func recordEvictions(reason string, n int) {
	if n <= 0 {
		return
	}
	metrics.CacheEvictions.With(prometheus.Labels{"cache": metricsName, "reason": reason}).Add(float64(n))
}
