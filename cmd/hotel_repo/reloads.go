package main

import (
	"github.com/littletreasures/hotel-media-repo/api"
	"github.com/littletreasures/hotel-media-repo/common/globals"
	"github.com/littletreasures/hotel-media-repo/metrics"
	"github.com/littletreasures/hotel-media-repo/thumbnail_cache"
	"github.com/sirupsen/logrus"
)

func setupReloads() {
	reloadWebOnChan(globals.WebReloadChan)
	reloadMetricsOnChan(globals.MetricsReloadChan)
	reloadCacheOnChan(globals.CacheReplaceChan)
}

func stopReloads() {
	// send stop signal to reload fns
	logrus.Debug("Stopping WebReloadChan")
	globals.WebReloadChan <- false
	logrus.Debug("Stopping MetricsReloadChan")
	globals.MetricsReloadChan <- false
	logrus.Debug("Stopping CacheReplaceChan")
	globals.CacheReplaceChan <- false
}

func reloadWebOnChan(reloadChan chan bool) {
	go func() {
		defer close(reloadChan)
		for {
			shouldReload := <-reloadChan
			if shouldReload {
				api.Reload()
			} else {
				return // received stop
			}
		}
	}()
}

func reloadMetricsOnChan(reloadChan chan bool) {
	go func() {
		defer close(reloadChan)
		for {
			shouldReload := <-reloadChan
			if shouldReload {
				metrics.Reload()
			} else {
				return // received stop
			}
		}
	}()
}

func reloadCacheOnChan(reloadChan chan bool) {
	go func() {
		defer close(reloadChan)
		for {
			shouldReload := <-reloadChan
			if shouldReload {
				thumbnail_cache.ReplaceInstance()
				// the running controller still holds the old cache
				api.Reload()
			} else {
				return // received stop
			}
		}
	}()
}
