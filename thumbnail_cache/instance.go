package thumbnail_cache

import (
	"sync"
	"time"

	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/sirupsen/logrus"
)

var instance ThumbnailCache
var lock = &sync.Mutex{}

func NewFromConfig(conf config.CacheConfig) ThumbnailCache {
	switch conf.Policy {
	case config.CachePolicyNone:
		logrus.Warn("Thumbnail cache is disabled - setting up a dummy instance")
		return NewNoopCache()
	case config.CachePolicyExpiring:
		expiration := expiryOf(conf)
		logrus.Info("Setting up expiring thumbnail cache (", expiration.String(), ")")
		return NewExpiringCache(expiration)
	case config.CachePolicyPressure:
		logrus.Infof("Setting up memory pressure thumbnail cache (flush at %.1f%%)", conf.Pressure.MaxMemoryPercent)
		return NewPressureCache(conf.Pressure)
	case config.CachePolicyUnbounded, "":
		logrus.Info("Setting up unbounded in-memory thumbnail cache")
		return NewMemoryCache()
	default:
		logrus.Warnf("Unknown cache policy %q - using unbounded in-memory cache", conf.Policy)
		return NewMemoryCache()
	}
}

// expiryOf never returns zero: go-cache would treat it as "never expire".
func expiryOf(conf config.CacheConfig) time.Duration {
	if conf.ExpireMinutes <= 0 {
		fallback := config.NewDefaultMainConfig().Cache.ExpireMinutes
		logrus.Warnf("Cache expireMinutes must be positive (got %d) - using %d", conf.ExpireMinutes, fallback)
		return time.Duration(fallback) * time.Minute
	}
	return time.Duration(conf.ExpireMinutes) * time.Minute
}

func Get() ThumbnailCache {
	lock.Lock()
	defer lock.Unlock()
	if instance == nil {
		instance = NewFromConfig(config.Get().Cache)
	}
	return instance
}

func ReplaceInstance() {
	lock.Lock()
	if instance != nil {
		instance.Reset()
		instance.Stop()
		instance = nil
	}
	lock.Unlock()

	Get() // initializes new cache
}
