package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

const httpAPIMetricsNamespace = "assetnote_http_api"

var (
	metricApiTotalRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: httpAPIMetricsNamespace,
			Name:      "total_hits",
			Help:      "HTTP API requests count",
		},
	)

	metricApiHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: httpAPIMetricsNamespace,
			Name:      "path_hits",
			Help:      "HTTP API paths hits",
		},
		[]string{"status", "path"},
	)

	metricApiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: httpAPIMetricsNamespace,
			Name:      "path_duration",
			Help:      "HTTP API request duration in seconds",
			// asset creation waits for several ledger rounds
			Buckets: []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(
		metricApiTotalRequests,
		metricApiHits,
		metricApiRequestDuration,
	)
}
