// Package httptransport wires the HTTP surface: middleware stack, domain
// routes, health probes, and the metrics endpoint. It carries no business
// logic; handlers delegate to the domain services.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fisco/internal/platform/health"
	"fisco/internal/platform/middleware"
	"fisco/internal/taxid/handler"
)

// NewRouter wires all public endpoints with middleware.
func NewRouter(taxid *handler.Handler, healthHandler *health.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	taxid.Register(r)
	healthHandler.Register(r)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
