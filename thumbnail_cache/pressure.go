package thumbnail_cache

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/littletreasures/hotel-media-repo/common/rcontext"
	"github.com/shirou/gopsutil/mem"
	"github.com/sirupsen/logrus"
)

type memoryProbe func() (float64, error)

func systemMemoryUsedPercent() (float64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return v.UsedPercent, nil
}

// PressureCache is a MemoryCache that drops all of its entries whenever
// system memory use reaches the configured threshold.
type PressureCache struct {
	*MemoryCache
	maxPercent   float64
	probe        memoryProbe
	cleanupTimer *time.Ticker
	done         chan bool
}

func NewPressureCache(conf config.PressureConfig) *PressureCache {
	interval := time.Duration(conf.CheckIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 10 * time.Second
	}
	c := newPressureCache(conf.MaxMemoryPercent, systemMemoryUsedPercent)
	c.cleanupTimer = time.NewTicker(interval)

	go func() {
		rctx := rcontext.Initial().LogWithFields(logrus.Fields{"task": "cache_pressure"})
		for {
			select {
			case <-c.done:
				return
			case <-c.cleanupTimer.C:
				c.checkPressure(rctx)
			}
		}
	}()

	return c
}

func newPressureCache(maxPercent float64, probe memoryProbe) *PressureCache {
	return &PressureCache{
		MemoryCache: NewMemoryCache(),
		maxPercent:  maxPercent,
		probe:       probe,
		done:        make(chan bool),
	}
}

func (c *PressureCache) checkPressure(rctx rcontext.RequestContext) int {
	used, err := c.probe()
	if err != nil {
		rctx.Log.Warn("Unable to sample memory usage: ", err)
		return 0
	}
	if used < c.maxPercent {
		return 0
	}

	size := c.UsedBytes()
	n := c.flush()
	recordEvictions("memory_pressure", n)
	rctx.Log.Infof("Memory use at %.1f%% - dropped %d thumbnails (%s)", used, n, humanize.Bytes(uint64(size)))
	return n
}

func (c *PressureCache) Stop() {
	if c.cleanupTimer != nil {
		c.cleanupTimer.Stop()
		close(c.done)
	}
	c.MemoryCache.Stop()
}
