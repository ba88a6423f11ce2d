package api

import (
	"net/http"

	"go.uber.org/zap"
)

const (
	DefaultMaxConnections         = 128
	DefaultRateLimiterStorageSize = 64 * 1024 // 64 KB
	DefaultMaxCreatesPerMinute    = 30
	DefaultMaxCreateBurst         = 5
)

type RunOptions struct {
	RateLimiterOpts      *RateLimiterOptions
	LogHttpRequestOpts   bool
	CollectMetrics       bool
	UseRealIPMiddleware  bool
	EnableHeartbeatRoute bool
	EnableMetricsRoute   bool
	RouteNotFoundHandler func(w http.ResponseWriter, r *http.Request)
	MaxConnections       int
}

type RateLimiterOptions struct {
	MemoryCacheSize      int
	MaxRequestsPerSecond int
	MaxBurst             int
	// MaxCreatesPerMinute limits POST /asa per client. Zero leaves creation under the general quota only.
	MaxCreatesPerMinute int
	MaxCreateBurst      int
}

func DefaultRunOptions() *RunOptions {
	return &RunOptions{
		RateLimiterOpts: &RateLimiterOptions{
			MemoryCacheSize:      DefaultRateLimiterStorageSize,
			MaxRequestsPerSecond: 10,
			MaxBurst:             20,
			MaxCreatesPerMinute:  DefaultMaxCreatesPerMinute,
			MaxCreateBurst:       DefaultMaxCreateBurst,
		},
		LogHttpRequestOpts:   true,
		EnableHeartbeatRoute: true,
		EnableMetricsRoute:   true,
		UseRealIPMiddleware:  true,
		CollectMetrics:       true,
		RouteNotFoundHandler: func(w http.ResponseWriter, r *http.Request) {
			zap.S().Debugf("Route not found: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		},
		MaxConnections: DefaultMaxConnections,
	}
}
