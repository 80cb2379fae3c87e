package runtime

import (
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/littletreasures/hotel-media-repo/common/version"
	"github.com/littletreasures/hotel-media-repo/thumbnailing"
	"github.com/sirupsen/logrus"
)

func RunStartupSequence() {
	version.Print(true)
	SetupSentry()
	PrintConfigInfo()
}

func SetupSentry() {
	c := config.Get().Sentry
	if !c.Enabled {
		return
	}
	logrus.Info("Setting up Sentry for debugging...")
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         c.Dsn,
		Environment: c.Environment,
		Debug:       c.Debug,
		Release:     version.Release(),
	})
	if err != nil {
		logrus.Fatal(err)
	}
}

func PrintConfigInfo() {
	c := config.Get()
	logrus.WithFields(logrus.Fields{
		"store":        c.Images.Store,
		"cachePolicy":  c.Cache.Policy,
		"delay":        c.Thumbnails.GenerationDelay().String(),
		"workers":      c.Thumbnails.NumWorkers,
		"singleflight": c.Thumbnails.Singleflight,
	}).Info("Thumbnail configuration")
	logrus.Info("Supported image types: ", strings.Join(thumbnailing.GetSupportedContentTypes(), ", "))
}
