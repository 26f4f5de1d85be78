package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the tax identifier service.
// Registration happens once via promauto; construct a single instance per process.
type Metrics struct {
	CFValidations   *prometheus.CounterVec
	CFGenerations   *prometheus.CounterVec
	PIVAValidations *prometheus.CounterVec
	RequestLatency  *prometheus.HistogramVec
}

// outcome label values: "valid", or the result's error kind.
const OutcomeValid = "valid"

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		CFValidations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fisco_cf_validations_total",
			Help: "Total number of codice fiscale validations, labeled by outcome",
		}, []string{"outcome"}),
		CFGenerations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fisco_cf_generations_total",
			Help: "Total number of codice fiscale generations, labeled by outcome",
		}, []string{"outcome"}),
		PIVAValidations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fisco_piva_validations_total",
			Help: "Total number of partita IVA validations, labeled by outcome",
		}, []string{"outcome"}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fisco_operation_latency_seconds",
			Help:    "Latency of service operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}
