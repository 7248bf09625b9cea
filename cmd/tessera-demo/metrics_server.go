package main

import (
	"context"
	stdliberrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/odvcencio/tessera/pkg/errors"
)

func newMetricsRouter(gatherer prometheus.Gatherer) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}).ServeHTTP)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return router
}

func newMetricsServer(addr string, gatherer prometheus.Gatherer) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           newMetricsRouter(gatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// serveMetrics runs srv until ctx is done, then shuts it down.
func serveMetrics(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("serving metrics", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !stdliberrors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return errors.Wrap(err, errors.ErrCodeInternal, "metrics server failed").
			WithContext("addr", srv.Addr)
	}
}
