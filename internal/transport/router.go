package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// NewRouter mounts the query API, health check and metrics endpoints.
func NewRouter(querier TransactionQuerier, storage Pinger, metrics HTTPMetrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/transactions",
		metrics.Instrument("/transactions", NewTransactionsHandler(querier, logger.Named("transactions"))))
	r.Method(http.MethodGet, "/healthz", metrics.Instrument("/healthz", healthHandler(storage, logger)))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return cors.Default().Handler(r)
}

func healthHandler(storage Pinger, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := storage.Ping(ctx); err != nil {
			logger.Warn("storage ping failed", zap.Error(err))
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
