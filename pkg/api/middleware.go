package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

// CreateLoggerMiddleware creates a middleware that logs the end of each request, along
// with what was requested, the response status and how long it took to return.
func CreateLoggerMiddleware(l *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww, ok := w.(middleware.WrapResponseWriter)
			if !ok {
				ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			}

			t1 := time.Now()
			defer func() {
				l.Info("ServedHttpRequest",
					zap.String("proto", r.Proto),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Duration("lat", time.Since(t1)),
					zap.Int("status", ww.Status()),
					zap.Int("size", ww.BytesWritten()),
					zap.String("request_id", middleware.GetReqID(r.Context())))
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

func chiHttpApiGeneralMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()

		metricApiTotalRequests.Inc()

		ww, ok := w.(middleware.WrapResponseWriter)
		if !ok {
			ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		}

		defer func() {
			routePath := r.URL.Path
			if chiRouteContext := chi.RouteContext(r.Context()); chiRouteContext != nil {
				if updatedRoutePath := chiRouteContext.RoutePattern(); updatedRoutePath != "" {
					routePath = updatedRoutePath
				}
			}

			statusCode := ww.Status()
			metricApiHits.WithLabelValues(strconv.Itoa(statusCode), routePath).Inc()

			observer := metricApiRequestDuration.WithLabelValues(r.Method, routePath)
			observer.Observe(time.Since(begin).Seconds())
		}()

		next.ServeHTTP(ww, r)
	})
}

// CreateMaxConnectionsMiddleware rejects requests with 503 once limit requests are in flight.
func CreateMaxConnectionsMiddleware(limit int) func(next http.Handler) http.Handler {
	sem := make(chan struct{}, limit)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
				next.ServeHTTP(w, r)
			default:
				w.WriteHeader(http.StatusServiceUnavailable)
			}
		})
	}
}
