package api

import (
	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/littletreasures/hotel-media-repo/controllers/hotels_controller"
	"github.com/littletreasures/hotel-media-repo/controllers/thumbnail_controller"
	"github.com/littletreasures/hotel-media-repo/metrics"
	"github.com/littletreasures/hotel-media-repo/storage/image_store"
	"github.com/littletreasures/hotel-media-repo/thumbnail_cache"
	"github.com/littletreasures/hotel-media-repo/thumbnailing"
	"github.com/pkg/errors"
)

type services struct {
	thumbnails    *thumbnail_controller.Controller
	hotels        *hotels_controller.HotelsService
	publicBaseUrl string

	// releases generation workers
	release func()
}

func newServices(conf *config.MainRepoConfig, cache thumbnail_cache.ThumbnailCache, counters *metrics.RequestCounters) (*services, error) {
	store, err := image_store.NewFromConfig(conf.Images)
	if err != nil {
		return nil, errors.Wrap(err, "error setting up image store")
	}

	hotels, err := hotels_controller.LoadService(conf.Hotels.DataFile)
	if err != nil {
		return nil, errors.Wrap(err, "error loading hotels")
	}

	generator, release := thumbnailing.NewFromConfig(conf.Thumbnails)
	controller := thumbnail_controller.New(cache, store, generator, counters)
	if conf.Thumbnails.Singleflight {
		controller = controller.WithSingleflight()
	}

	return &services{
		thumbnails:    controller,
		hotels:        hotels,
		publicBaseUrl: conf.General.PublicBaseUrl,
		release:       release,
	}, nil
}
