// Package metrics defines the Prometheus collectors for the URL shortener
// service. Collectors are registered with the default registry via promauto
// and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks request latency per route so percentiles
	// can be derived.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestsTotal counts requests per route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestsInFlight tracks requests currently being processed.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// ShortCodesGeneratedTotal counts generated short codes. Codes are not
	// persisted, so this is the only trace they leave.
	ShortCodesGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "short_codes_generated_total",
			Help: "Total number of short codes generated",
		},
	)

	// ShortCodeLength observes the length of generated codes. The Base62
	// encoding is variable-length, so the distribution shows how often
	// truncation applies.
	ShortCodeLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "short_code_length_chars",
			Help:    "Length in characters of generated short codes",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8},
		},
	)
)

// RecordCodeGenerated registers one generated short code of the given length.
func RecordCodeGenerated(length int) {
	ShortCodesGeneratedTotal.Inc()
	ShortCodeLength.Observe(float64(length))
}
