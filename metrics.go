package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// apiMetrics holds the Prometheus instruments for the API.
type apiMetrics struct {
	CalculationsTotal   *prometheus.CounterVec
	RequestErrors       prometheus.Counter
	CalculationDuration prometheus.Histogram
}

// defaultMetrics is the single shared instance. promauto registers on the
// default registry, so newAPIMetrics must only run once per process.
var defaultMetrics = newAPIMetrics()

// newAPIMetrics registers and returns the API metrics.
func newAPIMetrics() *apiMetrics {
	return &apiMetrics{
		CalculationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bee_api_calculations_total",
			Help: "Total number of successful BEE/TDEE calculations by biological sex",
		}, []string{"biological_sex"}),

		RequestErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bee_api_request_errors_total",
			Help: "Total number of rejected calculation requests",
		}),

		CalculationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bee_api_calculation_duration_seconds",
			Help:    "Time spent handling calculation requests",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
