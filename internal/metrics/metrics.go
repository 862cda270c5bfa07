// Package metrics exposes prometheus instrumentation for the capture path.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	capturesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "screenshot_captures_total",
		Help: "Screenshot captures by backend and outcome.",
	}, []string{"backend", "outcome"})

	captureDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "screenshot_capture_duration_seconds",
		Help:    "Wall time spent capturing a screenshot.",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
	}, []string{"backend"})
)

// ObserveCapture records one capture attempt.
func ObserveCapture(backend string, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	capturesTotal.WithLabelValues(backend, outcome).Inc()
	if err == nil {
		captureDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
	}
}

// Handler serves the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
