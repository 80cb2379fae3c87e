package images

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/littletreasures/hotel-media-repo/api/responses"
	"github.com/littletreasures/hotel-media-repo/api/routers"
	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/littletreasures/hotel-media-repo/common/rcontext"
	"github.com/littletreasures/hotel-media-repo/controllers/thumbnail_controller"
	"github.com/littletreasures/hotel-media-repo/thumbnailing"
	"github.com/sirupsen/logrus"
)

// GetThumbnail serves the thumbnail of the raw image named in the path.
func GetThumbnail(controller *thumbnail_controller.Controller) routers.GeneratorFn {
	return func(r *http.Request, rctx rcontext.RequestContext) interface{} {
		name := routers.GetParam("name", r)
		rctx = rctx.LogWithFields(logrus.Fields{"image": name})

		thumbnail, err := controller.GetThumbnail(name, rctx)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrImageNotFound):
				return &responses.StatusResponse{StatusCode: http.StatusNotFound}
			case errors.Is(err, common.ErrStoreUnavailable):
				rctx.Log.Error("Image store unavailable: ", err)
				sentry.CaptureException(err)
				return responses.ServiceUnavailable("image store unavailable")
			case errors.Is(err, common.ErrImageDecode):
				rctx.Log.Error("Stored image is not a usable image: ", err)
				sentry.CaptureException(err)
				return responses.InternalServerError("image could not be decoded")
			default:
				rctx.Log.Error("Unexpected error getting thumbnail: ", err)
				sentry.CaptureException(err)
				return responses.InternalServerError("unexpected error getting thumbnail")
			}
		}

		return &responses.DownloadResponse{
			ContentType: thumbnailing.ContentType,
			Filename:    name,
			SizeBytes:   int64(len(thumbnail)),
			Data:        io.NopCloser(bytes.NewReader(thumbnail)),
		}
	}
}
