package image_store

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/littletreasures/hotel-media-repo/common/rcontext"
	"github.com/minio/minio-go/v6"
	"github.com/pkg/errors"
)

type S3Store struct {
	conf   config.S3Config
	client *minio.Client
}

func NewS3Store(conf config.S3Config) (*S3Store, error) {
	if conf.Endpoint == "" || conf.BucketName == "" || conf.AccessKeyId == "" || conf.AccessSecret == "" {
		return nil, errors.New("invalid configuration: missing s3 options")
	}

	var s3client *minio.Client
	var err error
	if conf.Region != "" {
		s3client, err = minio.NewWithRegion(conf.Endpoint, conf.AccessKeyId, conf.AccessSecret, conf.Ssl, conf.Region)
	} else {
		s3client, err = minio.New(conf.Endpoint, conf.AccessKeyId, conf.AccessSecret, conf.Ssl)
	}
	if err != nil {
		return nil, err
	}

	return &S3Store{conf: conf, client: s3client}, nil
}

func (s *S3Store) Kind() string {
	return config.ImageStoreS3
}

func (s *S3Store) objectName(name string) string {
	return s.conf.Prefix + name
}

func (s *S3Store) Locate(name string) string {
	return "s3://" + s.conf.BucketName + "/" + s.objectName(name)
}

func (s *S3Store) FetchRaw(ctx rcontext.RequestContext, name string) ([]byte, error) {
	if name == "" {
		return nil, common.ErrImageNotFound
	}

	obj, err := s.client.GetObjectWithContext(ctx, s.conf.BucketName, s.objectName(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, s.translateError(err)
	}
	defer obj.Close()

	b, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.translateError(err)
	}
	if len(b) == 0 {
		return nil, common.ErrImageNotFound
	}

	ctx.Log.Debugf("Read %s of raw image from %s", humanize.Bytes(uint64(len(b))), s.Locate(name))
	return b, nil
}

func (s *S3Store) translateError(err error) error {
	if isNotFound(err) {
		return common.ErrImageNotFound
	}
	recordStoreError(s.Kind())
	return errors.Wrap(common.ErrStoreUnavailable, err.Error())
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey"
}
