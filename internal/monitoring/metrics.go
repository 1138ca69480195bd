package monitoring

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Backend request metrics
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategy_console_requests_total",
			Help: "Total number of backend API requests",
		},
		[]string{"endpoint", "method"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "strategy_console_request_duration_seconds",
			Help:    "Backend API request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	apiErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategy_console_api_errors_total",
			Help: "Total number of backend API errors by status class",
		},
		[]string{"status_class"},
	)

	// Account metrics refreshed by the watch daemon
	strategiesTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "strategy_console_strategies_total",
			Help: "Total strategies on the account",
		},
	)

	strategiesActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "strategy_console_strategies_active",
			Help: "Active strategies on the account",
		},
	)

	strategiesByType = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "strategy_console_strategies_by_type",
			Help: "Strategies on the account by type",
		},
		[]string{"strategy_type"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestDuration)
	prometheus.MustRegister(apiErrorsTotal)
	prometheus.MustRegister(strategiesTotal)
	prometheus.MustRegister(strategiesActive)
	prometheus.MustRegister(strategiesByType)
}

// MetricsHandler serves the Prometheus scrape endpoint.
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint.
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordRequest records one backend call and its latency.
func RecordRequest(endpoint, method string, duration time.Duration) {
	requestsTotal.WithLabelValues(endpoint, method).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordAPIError records a failed backend call. Status 0 (transport failure)
// counts as class "network".
func RecordAPIError(status int) {
	class := "network"
	if status > 0 {
		class = fmt.Sprintf("%dxx", status/100)
	}
	apiErrorsTotal.WithLabelValues(class).Inc()
}

// UpdateStrategyCounts refreshes the account gauges from a summary poll.
func UpdateStrategyCounts(total, active int, byType map[string]int) {
	strategiesTotal.Set(float64(total))
	strategiesActive.Set(float64(active))
	for strategyType, count := range byType {
		strategiesByType.WithLabelValues(strategyType).Set(float64(count))
	}
}
