package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/littletreasures/hotel-media-repo/metrics"
	"github.com/littletreasures/hotel-media-repo/thumbnail_cache"
	"github.com/sirupsen/logrus"
)

type webServer struct {
	*http.Server
	replaced atomic.Bool
}

// lifecycleLock guards srv and current. Reloads can arrive from more than
// one goroutine (web config and cache replacement).
var lifecycleLock = &sync.Mutex{}
var srv *webServer
var current *services
var requestCounters *metrics.RequestCounters
var waitGroup = &sync.WaitGroup{}
var shutdownTimeout = 5 * time.Second

// Init starts the web server. counters are kept across reloads.
func Init(counters *metrics.RequestCounters) *sync.WaitGroup {
	lifecycleLock.Lock()
	defer lifecycleLock.Unlock()

	requestCounters = counters
	s, err := newServices(config.Get(), thumbnail_cache.Get(), requestCounters)
	if err != nil {
		logrus.Fatal(err)
	}
	if err = start(s); err != nil {
		logrus.Fatal(err)
	}
	return waitGroup
}

// start binds before returning so a following stop always finds the
// listener in place. Callers must hold lifecycleLock.
func start(s *services) error {
	address := net.JoinHostPort(config.Get().General.BindAddress, strconv.Itoa(config.Get().General.Port))

	handler := buildRoutes(s)

	// Note: we bind Sentry here to ensure we capture *everything*
	if config.Get().Sentry.Enabled {
		sentryHandler := sentryhttp.New(sentryhttp.Options{Repanic: true})
		handler = sentryHandler.Handle(handler)
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		s.release()
		return err
	}

	server := &webServer{Server: &http.Server{Addr: address, Handler: handler}}
	srv = server
	current = s
	go func() {
		//goland:noinspection HttpUrlsUsage
		logrus.WithField("address", address).Info("Started up. Listening at http://" + address)
		if err := server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			sentry.CaptureException(err)
			logrus.Fatal(err)
		}

		// Only notify the main thread that we're done if we're actually done
		if !server.replaced.Load() {
			waitGroup.Done()
		}
	}()
	return nil
}

// Reload swaps in a server built from the current config. If the new
// services cannot be built the running server is kept.
func Reload() {
	lifecycleLock.Lock()
	defer lifecycleLock.Unlock()

	s, err := newServices(config.Get(), thumbnail_cache.Get(), requestCounters)
	if err != nil {
		logrus.Error("Keeping the running web server: ", err)
		sentry.CaptureException(err)
		return
	}

	if srv != nil {
		srv.replaced.Store(true)
	}

	// Stop the server first
	stop()

	// Reload the web server, ignoring the wait group (because we don't care to wait here)
	if err = start(s); err != nil {
		sentry.CaptureException(err)
		logrus.Fatal(err)
	}
}

func Stop() {
	lifecycleLock.Lock()
	defer lifecycleLock.Unlock()
	stop()
}

func stop() {
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logrus.Warn("Web server did not shut down in time, closing remaining connections: ", err)
			if err = srv.Close(); err != nil {
				logrus.Error(err)
			}
		}
		srv = nil
	}
	if current != nil {
		current.release()
		current = nil
	}
}
