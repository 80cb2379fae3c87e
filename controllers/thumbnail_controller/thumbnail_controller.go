package thumbnail_controller

import (
	"bytes"
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/littletreasures/hotel-media-repo/common/rcontext"
	"github.com/littletreasures/hotel-media-repo/metrics"
	"github.com/littletreasures/hotel-media-repo/storage/image_store"
	"github.com/littletreasures/hotel-media-repo/thumbnail_cache"
	"github.com/littletreasures/hotel-media-repo/thumbnailing"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Controller serves thumbnails from the cache, generating and storing them
// from the image store on a miss.
type Controller struct {
	cache     thumbnail_cache.ThumbnailCache
	store     image_store.ImageStore
	generator thumbnailing.Thumbnailer
	counters  *metrics.RequestCounters

	// nil unless concurrent misses for one name should share a generation
	group *singleflight.Group
}

func New(cache thumbnail_cache.ThumbnailCache, store image_store.ImageStore, generator thumbnailing.Thumbnailer, counters *metrics.RequestCounters) *Controller {
	return &Controller{
		cache:     cache,
		store:     store,
		generator: generator,
		counters:  counters,
	}
}

// WithSingleflight makes concurrent misses for the same name wait on one
// fetch and generation instead of each doing their own.
func (c *Controller) WithSingleflight() *Controller {
	c.group = &singleflight.Group{}
	return c
}

// GetThumbnail returns the encoded thumbnail for the named raw image. The
// error is common.ErrImageNotFound when the store has no such image, and
// wraps common.ErrImageDecode or common.ErrStoreUnavailable otherwise.
func (c *Controller) GetThumbnail(name string, ctx rcontext.RequestContext) ([]byte, error) {
	c.counters.RecordRequest()

	if thumbnail, ok := c.cache.Get(name); ok {
		ctx.Log.Debug("Cache hit for image ", name)
		return thumbnail, nil
	}

	misses := c.counters.RecordMiss()
	ctx.Log.Debug("Cache miss for image ", name)
	ctx.Log.Tracef("Cache miss ratio %f", metrics.MissRatio(misses, c.counters.TotalRequests()))
	ctx.Log.Trace("Raw image location: ", c.store.Locate(name))

	if c.group == nil {
		return c.generateAndStore(name, ctx)
	}

	v, err, shared := c.group.Do(name, func() (interface{}, error) {
		return c.generateAndStore(name, ctx)
	})
	if err != nil {
		return nil, err
	}
	thumbnail := v.([]byte)
	if shared {
		ctx.Log.Debug("Shared thumbnail generation for image ", name)
		thumbnail = bytes.Clone(thumbnail)
	}
	return thumbnail, nil
}

func (c *Controller) generateAndStore(name string, ctx rcontext.RequestContext) ([]byte, error) {
	raw, err := c.store.FetchRaw(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrImageNotFound) {
			ctx.Log.Debug("Raw image not found: ", name)
		} else {
			ctx.Log.Error("Error reading raw image: ", err)
		}
		return nil, err
	}

	thumbnail, err := c.generator.Generate(raw)
	if err != nil {
		ctx.Log.WithFields(logrus.Fields{"image": name}).Warn("Error generating thumbnail: ", err)
		return nil, err
	}

	c.cache.Put(name, thumbnail)
	ctx.Log.Debugf("Stored %s thumbnail for image %s (from %s raw)", humanize.Bytes(uint64(len(thumbnail))), name, humanize.Bytes(uint64(len(raw))))
	return thumbnail, nil
}
