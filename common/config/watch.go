package config

import (
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/littletreasures/hotel-media-repo/common/globals"
	"github.com/sirupsen/logrus"
)

func Watch() *fsnotify.Watcher {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logrus.Fatal(err)
	}

	err = watcher.Add(Path)
	if err != nil {
		logrus.Fatal(err)
	}

	go func() {
		debounced := debounce.New(1 * time.Second)
		for {
			select {
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				debounced(onFileChanged)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logrus.Error("error in config watcher:", err)
			}
		}
	}()

	return watcher
}

func onFileChanged() {
	logrus.Info("Config file change detected - reloading")
	configNow := Get()
	configNew, err := reloadConfig()
	if err != nil {
		logrus.Error("Error reloading configuration - ignoring")
		logrus.Error(err)
		return
	}

	logrus.Info("Applying reloaded config live")
	set(configNew)

	changes := diff(configNow, configNew)

	if changes.logging {
		logrus.Warn("Log configuration changed - restart the hotel repo to apply changes")
	}
	if changes.cache {
		logrus.Warn("Cache configuration changed - replacing thumbnail cache and remounting")
		globals.CacheReplaceChan <- true
	}
	if changes.web {
		logrus.Warn("Webserver configuration changed - remounting")
		globals.WebReloadChan <- true
	}
	if changes.metrics {
		logrus.Warn("Metrics configuration changed - remounting")
		globals.MetricsReloadChan <- true
	}
}

type configChanges struct {
	web     bool
	metrics bool
	cache   bool
	logging bool
}

func diff(configNow *MainRepoConfig, configNew *MainRepoConfig) configChanges {
	return configChanges{
		web: configNew.General.BindAddress != configNow.General.BindAddress ||
			configNew.General.Port != configNow.General.Port ||
			configNew.General.TrustAnyForward != configNow.General.TrustAnyForward ||
			configNew.General.PublicBaseUrl != configNow.General.PublicBaseUrl ||
			configNew.Images != configNow.Images ||
			configNew.Thumbnails != configNow.Thumbnails ||
			configNew.Hotels != configNow.Hotels,
		metrics: configNew.Metrics != configNow.Metrics,
		cache:   configNew.Cache != configNow.Cache,
		logging: configNew.General.LogDirectory != configNow.General.LogDirectory ||
			configNew.General.LogLevel != configNow.General.LogLevel ||
			configNew.General.JsonLogs != configNow.General.JsonLogs,
	}
}
