package routers

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/littletreasures/hotel-media-repo/util"
	"github.com/sebest/xff"
	"github.com/sirupsen/logrus"
)

type RequestCounter struct {
	lastId atomic.Uint64
}

func (c *RequestCounter) NextId() string {
	return "REQ-" + strconv.FormatUint(c.lastId.Add(1)-1, 10)
}

type InstallMetadataRouter struct {
	next       http.Handler
	actionName string
	counter    *RequestCounter
}

func NewInstallMetadataRouter(actionName string, counter *RequestCounter, next http.Handler) *InstallMetadataRouter {
	return &InstallMetadataRouter{
		next:       next,
		actionName: actionName,
		counter:    counter,
	}
}

func (i *InstallMetadataRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.RemoteAddr = remoteHost(r)

	requestId := i.counter.NextId()
	logger := logrus.WithFields(logrus.Fields{
		"method":      r.Method,
		"host":        r.Host,
		"resource":    r.URL.Path,
		"queryString": util.GetLogSafeQueryString(r),
		"requestId":   requestId,
		"remoteAddr":  r.RemoteAddr,
		"userAgent":   r.UserAgent(),
		"action":      i.actionName,
	})

	ctx := r.Context()
	ctx = context.WithValue(ctx, common.ContextRequestId, requestId)
	ctx = context.WithValue(ctx, common.ContextAction, i.actionName)
	ctx = context.WithValue(ctx, common.ContextLogger, logger)
	r = r.WithContext(ctx)

	if i.next != nil {
		i.next.ServeHTTP(w, r)
	}
}

func remoteHost(r *http.Request) string {
	var raddr string
	if config.Get().General.TrustAnyForward {
		raddr = r.Header.Get("X-Forwarded-For")
	} else {
		raddr = xff.GetRemoteAddr(r)
	}
	if raddr == "" {
		raddr = r.RemoteAddr
	}
	host, _, err := net.SplitHostPort(raddr)
	if err != nil {
		// X-Forwarded-For values normally carry no port
		return raddr
	}
	return host
}

func GetActionName(r *http.Request) string {
	x, ok := r.Context().Value(common.ContextAction).(string)
	if !ok {
		return "<UNKNOWN>"
	}
	return x
}

func GetLogger(r *http.Request) *logrus.Entry {
	x, ok := r.Context().Value(common.ContextLogger).(*logrus.Entry)
	if !ok {
		return logrus.WithFields(logrus.Fields{"nocontext": true})
	}
	return x
}
