// Package httptransport assembles the public router: exchange routes,
// health, metrics, and the cross-cutting middleware chain.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"santa/internal/exchange/handler"
	"santa/pkg/platform/middleware/metadata"
	"santa/pkg/platform/middleware/requesttime"
)

// NewRouter wires all endpoints. Business logic stays behind the
// exchange handler; this layer only composes.
func NewRouter(exchange *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(metadata.RequestID)
	r.Use(requesttime.Middleware)

	exchange.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
