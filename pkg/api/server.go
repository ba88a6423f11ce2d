package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultReadHeaderTimeout = 10 * time.Second
	shutdownTimeout          = 5 * time.Second
)

// Serve runs the HTTP server on listener until ctx is done, then shuts it down gracefully.
func Serve(ctx context.Context, listener net.Listener, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}
	srv.RegisterOnShutdown(func() {
		logger.Info("API server is shutting down...")
	})
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown API server", zap.Error(err))
		}
	}()
	logger.Info("Starting API server", zap.Stringer("address", listener.Addr()))
	err := srv.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "API server failed")
	}
	<-done
	return nil
}

// Run listens on address and serves handler until ctx is done.
func Run(ctx context.Context, address string, handler http.Handler, logger *zap.Logger) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %q", address)
	}
	return Serve(ctx, listener, handler, logger)
}
