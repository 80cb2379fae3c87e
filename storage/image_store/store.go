package image_store

import (
	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/littletreasures/hotel-media-repo/common/rcontext"
	"github.com/littletreasures/hotel-media-repo/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// ImageStore is the backing store of raw, unprocessed hotel images.
//
// FetchRaw returns common.ErrImageNotFound when the image is absent or empty,
// and an error wrapping common.ErrStoreUnavailable when the store could not
// be read.
type ImageStore interface {
	FetchRaw(ctx rcontext.RequestContext, name string) ([]byte, error)
	Locate(name string) string
	Kind() string
}

func NewFromConfig(conf config.ImagesConfig) (ImageStore, error) {
	switch conf.Store {
	case config.ImageStoreFile, "":
		logrus.Info("Reading raw images from directory ", conf.Directory)
		return NewFileStore(conf.Directory), nil
	case config.ImageStoreS3:
		logrus.Infof("Reading raw images from s3 bucket %s at %s", conf.S3.BucketName, conf.S3.Endpoint)
		return NewS3Store(conf.S3)
	default:
		return nil, errors.New("unknown image store: " + conf.Store)
	}
}

func recordStoreError(kind string) {
	metrics.ImageStoreErrors.With(prometheus.Labels{"store": kind}).Inc()
}
