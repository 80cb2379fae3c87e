package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/littletreasures/hotel-media-repo/api"
	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/littletreasures/hotel-media-repo/common/logging"
	"github.com/littletreasures/hotel-media-repo/common/runtime"
	"github.com/littletreasures/hotel-media-repo/common/version"
	"github.com/littletreasures/hotel-media-repo/metrics"
	"github.com/littletreasures/hotel-media-repo/thumbnail_cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	configPath := flag.String("config", "hotel-repo.yaml", "The path to the configuration")
	versionFlag := flag.Bool("version", false, "Prints the version and exits")
	flag.Parse()

	if *versionFlag {
		version.Print(false)
		return // exit 0
	}

	// Override config path with config for Docker users
	configEnv := os.Getenv("REPO_CONFIG")
	if configEnv != "" {
		configPath = &configEnv
	}

	config.Path = *configPath

	err := logging.Setup(
		config.Get().General.LogDirectory,
		config.Get().General.LogColors,
		config.Get().General.JsonLogs,
		config.Get().General.LogLevel,
	)
	if err != nil {
		panic(err)
	}

	logrus.Info("Starting up...")
	runtime.RunStartupSequence()
	defer sentry.Flush(2 * time.Second)
	defer sentry.Recover()

	logrus.Info("Starting config watcher...")
	watcher := config.Watch()
	defer func(watcher *fsnotify.Watcher) {
		_ = watcher.Close()
	}(watcher)
	setupReloads()

	counters := metrics.NewRequestCounters()
	prometheus.MustRegister(counters.Collectors()...)

	logrus.Info("Starting hotel media repository...")
	metrics.Init()
	web := api.Init(counters)

	// Set up a function to stop everything
	stopAllButWeb := func() {
		logrus.Info("Stopping reload watchers...")
		stopReloads()

		logrus.Info("Stopping metrics...")
		metrics.Stop()
	}

	// Set up a listener for SIGINT
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	selfStop := false
	go func() {
		defer close(stop)
		<-stop
		selfStop = true

		logrus.Warn("Stop signal received")
		stopAllButWeb()

		logrus.Info("Stopping web server...")
		api.Stop()
	}()

	// Wait for the web server to exit nicely
	web.Add(1)
	web.Wait()

	// Stop everything else if we have to
	if !selfStop {
		stopAllButWeb()
	}

	thumbnail_cache.Get().Stop()
	logrus.Infof("Served %d thumbnail requests (%d cache misses)", counters.TotalRequests(), counters.CacheMisses())

	// For debugging
	logrus.Info("Goodbye!")
}
