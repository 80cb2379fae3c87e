package metrics

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestRequestCounters(t *testing.T) {
	c := NewRequestCounters()
	assert.Equal(t, int64(1), c.RecordRequest())
	assert.Equal(t, int64(2), c.RecordRequest())
	assert.Equal(t, int64(1), c.RecordMiss())

	assert.Equal(t, int64(2), c.TotalRequests())
	assert.Equal(t, int64(1), c.CacheMisses())
}

func TestRequestCountersConcurrent(t *testing.T) {
	c := NewRequestCounters()
	wg := &sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.RecordRequest()
			if i%2 == 0 {
				c.RecordMiss()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(50), c.TotalRequests())
	assert.Equal(t, int64(25), c.CacheMisses())
}

func TestMissRatio(t *testing.T) {
	assert.Equal(t, float32(0), MissRatio(3, 0))
	assert.Equal(t, float32(1), MissRatio(1, 1))
	assert.Equal(t, float32(0.5), MissRatio(2, 4))
}

func TestCollectors(t *testing.T) {
	c := NewRequestCounters()
	c.RecordRequest()
	c.RecordMiss()

	reg := prometheus.NewPedanticRegistry()
	for _, col := range c.Collectors() {
		assert.NoError(t, reg.Register(col))
	}
	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.Len(t, families, 2)
	for _, f := range families {
		assert.Equal(t, float64(1), f.GetMetric()[0].GetCounter().GetValue())
	}
}

func TestHandlerRunsListeners(t *testing.T) {
	called := false
	OnBeforeMetricsRequested("test", func() {
		called = true
	})
	defer RemoveListener("test")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
