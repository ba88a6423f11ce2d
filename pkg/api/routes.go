package api

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type HandleErrorFunc func(w http.ResponseWriter, r *http.Request, err error)
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func toHTTPHandlerFunc(handler HandlerFunc, errorHandler HandleErrorFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		err := handler(writer, request)
		if err != nil {
			errorHandler(writer, request, err)
		}
	}
}

func (a *AssetApi) Routes(opts *RunOptions, logger *zap.Logger) (chi.Router, error) {
	var limiters assetLimiters
	if opts.RateLimiterOpts != nil {
		var err error
		if limiters, err = createRateLimiters(opts.RateLimiterOpts); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if opts.UseRealIPMiddleware {
		// for nginx/haproxy specific headers
		r.Use(middleware.RealIP)
	}
	if opts.CollectMetrics {
		r.Use(chiHttpApiGeneralMetricsMiddleware)
	}
	if opts.MaxConnections > 0 {
		r.Use(CreateMaxConnectionsMiddleware(opts.MaxConnections))
	}
	if opts.LogHttpRequestOpts {
		r.Use(CreateLoggerMiddleware(logger))
	}
	if opts.RouteNotFoundHandler != nil {
		r.NotFound(opts.RouteNotFoundHandler)
	}

	errHandler := NewErrorHandler(logger)
	wrapper := func(handlerFunc HandlerFunc) http.HandlerFunc {
		return toHTTPHandlerFunc(handlerFunc, errHandler.Handle)
	}

	if opts.EnableHeartbeatRoute {
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			if _, err := w.Write([]byte("OK")); err != nil {
				logger.Error("Can't write 'OK' to ResponseWriter", zap.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
			}
		})
	}
	if opts.EnableMetricsRoute {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/asa", func(r chi.Router) {
		if limiters.query != nil {
			r.Use(limiters.query)
		}
		create := r.With()
		if limiters.create != nil {
			create = r.With(limiters.create)
		}
		create.Post("/", wrapper(a.CreateAsset))
		r.Get("/{assetId}/properties", wrapper(a.AssetProperties))
	})

	return r, nil
}
