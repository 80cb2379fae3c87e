package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestCounters tracks thumbnail requests and cache misses for the lifetime
// of the process. The zero value is ready to use.
type RequestCounters struct {
	totalRequests atomic.Int64
	cacheMisses   atomic.Int64
}

func NewRequestCounters() *RequestCounters {
	return &RequestCounters{}
}

// RecordRequest counts one request and returns the new total.
func (c *RequestCounters) RecordRequest() int64 {
	return c.totalRequests.Add(1)
}

// RecordMiss counts one cache miss and returns the new miss count.
func (c *RequestCounters) RecordMiss() int64 {
	return c.cacheMisses.Add(1)
}

func (c *RequestCounters) TotalRequests() int64 {
	return c.totalRequests.Load()
}

func (c *RequestCounters) CacheMisses() int64 {
	return c.cacheMisses.Load()
}

// MissRatio divides misses by totalRequests. Callers read the two counters
// separately, so under concurrent load the result is approximate.
func MissRatio(misses int64, totalRequests int64) float32 {
	if totalRequests <= 0 {
		return 0
	}
	return float32(misses) / float32(totalRequests)
}

// Collectors exposes the counters to prometheus. Register them once per
// RequestCounters instance.
func (c *RequestCounters) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "hotel_thumbnail_requests_total",
		}, func() float64 {
			return float64(c.TotalRequests())
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "hotel_thumbnail_cache_misses_total",
		}, func() float64 {
			return float64(c.CacheMisses())
		}),
	}
}
