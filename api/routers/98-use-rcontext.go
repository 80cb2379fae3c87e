package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alioygur/is"
	"github.com/getsentry/sentry-go"
	"github.com/littletreasures/hotel-media-repo/api/responses"
	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/littletreasures/hotel-media-repo/common/rcontext"
)

type GeneratorFn = func(r *http.Request, ctx rcontext.RequestContext) interface{}

type RContextRouter struct {
	generatorFn GeneratorFn
	next        http.Handler
}

func NewRContextRouter(generatorFn GeneratorFn, next http.Handler) *RContextRouter {
	return &RContextRouter{generatorFn: generatorFn, next: next}
}

func (c *RContextRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := GetLogger(r)
	rctx := rcontext.RequestContext{
		Context: r.Context(),
		Log:     log,
		Request: r,
	}

	var res interface{}
	res = c.generatorFn(r, rctx)
	if res == nil {
		res = &responses.EmptyResponse{}
	}

	shouldCache := true
	wrappedRes, isNoCache := res.(*responses.DoNotCacheResponse)
	if isNoCache {
		shouldCache = false
		res = wrappedRes.Payload
	}

	headers := w.Header()

	if statusRes, isStatus := res.(*responses.StatusResponse); isStatus {
		log.Infof("Replying with status %d and no body", statusRes.StatusCode)
		headers.Set("Content-Length", "0")
		r = writeStatusCode(w, r, statusRes.StatusCode)
		if c.next != nil {
			c.next.ServeHTTP(w, r)
		}
		return // don't continue
	}

	proposedStatusCode := http.StatusOK
	var stream io.ReadCloser
	expectedBytes := int64(0)
	var contentType string
	if downloadRes, isDownload := res.(*responses.DownloadResponse); isDownload {
		log.Infof("Replying with result: %T <%d bytes of %s>", res, downloadRes.SizeBytes, downloadRes.ContentType)
		contentType = downloadRes.ContentType
		expectedBytes = downloadRes.SizeBytes

		if shouldCache {
			headers.Set("Cache-Control", "private, max-age=259200") // 3 days
		}

		disposition := downloadRes.TargetDisposition
		if disposition == "" {
			disposition = "inline"
		}
		if fname := downloadRes.Filename; fname != "" {
			if is.ASCII(fname) {
				headers.Set("Content-Disposition", disposition+"; filename="+url.QueryEscape(fname))
			} else {
				headers.Set("Content-Disposition", disposition+"; filename*=utf-8''"+url.QueryEscape(fname))
			}
		}
		stream = downloadRes.Data
	} else {
		log.Infof("Replying with result: %T %+v", res, res)
	}

	// Try to find a suitable error code, if one is needed
	if errRes, isError := res.(responses.ErrorResponse); isError {
		res = &errRes // just fix it
	}
	if errRes, isError := res.(*responses.ErrorResponse); isError {
		proposedStatusCode = statusCodeFor(errRes)
	}

	// Prepare a stream if one isn't set, and assume JSON
	if stream == nil {
		contentType = "application/json"
		b, err := json.Marshal(res)
		if err != nil {
			panic(err) // blow up this request
		}
		stream = io.NopCloser(bytes.NewReader(b))
		expectedBytes = int64(len(b))
	}

	if _, _, err := mime.ParseMediaType(contentType); err != nil {
		sentry.CaptureException(err)
		log.Warn("Failed to parse content type header on reply: ", err)
	}
	headers.Set("Content-Type", contentType)

	if expectedBytes > 0 {
		headers.Set("Content-Length", strconv.FormatInt(expectedBytes, 10))
	}

	r = writeStatusCode(w, r, proposedStatusCode)

	defer stream.Close()
	if r.Method != http.MethodHead {
		written, err := io.Copy(w, stream)
		if err != nil {
			panic(err) // blow up this request
		}
		if expectedBytes > 0 && written != expectedBytes {
			panic(errors.New(fmt.Sprintf("mismatch transfer size: %d expected, %d sent", expectedBytes, written)))
		}
	}

	if c.next != nil {
		c.next.ServeHTTP(w, r)
	}
}

func statusCodeFor(errRes *responses.ErrorResponse) int {
	switch errRes.InternalCode {
	case common.ErrCodeNotFound:
		return http.StatusNotFound
	case common.ErrCodeBadRequest:
		return http.StatusBadRequest
	case common.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case common.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default: // Treat as unknown (a generic server error)
		return http.StatusInternalServerError
	}
}

func GetStatusCode(r *http.Request) int {
	x, ok := r.Context().Value(common.ContextStatusCode).(int)
	if !ok {
		return http.StatusOK
	}
	return x
}

func writeStatusCode(w http.ResponseWriter, r *http.Request, statusCode int) *http.Request {
	w.WriteHeader(statusCode)
	return r.WithContext(context.WithValue(r.Context(), common.ContextStatusCode, statusCode))
}
