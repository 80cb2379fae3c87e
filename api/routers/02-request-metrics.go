package routers

import (
	"context"
	"net/http"
	"time"

	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/littletreasures/hotel-media-repo/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsRequestRouter struct {
	next http.Handler
}

func NewMetricsRequestRouter(next http.Handler) *MetricsRequestRouter {
	return &MetricsRequestRouter{next: next}
}

func (m *MetricsRequestRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	metrics.HttpRequests.With(prometheus.Labels{
		"host":   r.Host,
		"action": GetActionName(r),
		"method": r.Method,
	}).Inc()

	r = r.WithContext(context.WithValue(r.Context(), common.ContextStartTime, time.Now()))

	if m.next != nil {
		m.next.ServeHTTP(w, r)
	}
}
