// Package middleware contains the Gin middleware of the storefront API.
//
// This file exposes Prometheus instrumentation. Metrics() records request
// counts, latencies, in-flight requests and response sizes labelled by
// method, registered route and status. StoreGauges() keeps per-entity gauges
// (products, custom orders, contacts, users) current after successful
// submissions.
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// Status is omitted to keep histogram cardinality low.
	httpLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	httpRespSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_size_bytes",
			Help: "Size of HTTP responses in bytes.",
			Buckets: []float64{
				200, 500, 1 << 10, 2 << 10, 5 << 10,
				10 << 10, 25 << 10, 50 << 10,
				100 << 10, 250 << 10, 500 << 10,
				1 << 20, 2 << 20,
			},
		},
		[]string{"method", "path"},
	)

	// storeEntities mirrors the store's entity counts.
	storeEntities = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storefront_entities",
			Help: "Number of stored entities by kind.",
		},
		[]string{"entity"},
	)
)

func init() {
	prometheus.MustRegister(httpReqs, httpLat, httpInflight, httpRespSize, storeEntities)
}

// Metrics instruments every request. The path label is the registered route
// (c.FullPath()), falling back to the raw path when nothing matched.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		httpReqs.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpLat.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size >= 0 {
			httpRespSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}

// EntityCounter reports current entity counts keyed by entity name.
type EntityCounter func(ctx context.Context) (map[string]int64, error)

// RefreshStoreGauges sets the entity gauges from count. Errors leave the
// previous values in place.
func RefreshStoreGauges(ctx context.Context, count EntityCounter) error {
	if count == nil {
		return nil
	}
	m, err := count(ctx)
	if err != nil {
		return err
	}
	for k, v := range m {
		storeEntities.WithLabelValues(k).Set(float64(v))
	}
	return nil
}

// StoreGauges refreshes the entity gauges after each successful POST.
func StoreGauges(count EntityCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Request.Method != http.MethodPost || c.Writer.Status() != http.StatusCreated {
			return
		}
		if err := RefreshStoreGauges(c.Request.Context(), count); err != nil {
			LoggerFrom(c).Warn().Err(err).Msg("refresh store gauges")
		}
	}
}
