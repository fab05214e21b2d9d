// Package metrics provides Prometheus metrics for the activities service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace string
	registry  prometheus.Registerer

	// Roster metrics
	signups         prometheus.Counter
	unregistrations prometheus.Counter
	rejections      *prometheus.CounterVec
	rosterSize      *prometheus.GaugeVec
	rosterCapacity  *prometheus.GaugeVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry so the exposition contains only our collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "mergington",
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	factory := promauto.With(m.registry)

	m.signups = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "signups_total",
		Help:      "Total successful activity signups.",
	})
	m.unregistrations = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "unregistrations_total",
		Help:      "Total successful activity unregistrations.",
	})
	m.rejections = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "signup_rejections_total",
		Help:      "Rejected roster mutations by reason.",
	}, []string{"reason"})
	m.rosterSize = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "activity_roster_size",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})
	m.rosterCapacity = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "activity_capacity",
		Help:      "Configured max participants per activity.",
	}, []string{"activity"})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"endpoint", "method", "status"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes.",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_goroutines",
		Help:      "Current goroutine count.",
	})
}

// Package-level helpers operating on the global manager.

// RecordSignup increments the successful-signup counter.
func RecordSignup() {
	globalManager.signups.Inc()
}

// RecordUnregistration increments the successful-unregistration counter.
func RecordUnregistration() {
	globalManager.unregistrations.Inc()
}

// RecordRejection increments the rejection counter for a reason such as
// "not_found", "duplicate", "not_signed_up" or "full".
func RecordRejection(reason string) {
	globalManager.rejections.WithLabelValues(reason).Inc()
}

// UpdateRosterSize sets the participant count gauge for an activity.
func UpdateRosterSize(activity string, size int) {
	globalManager.rosterSize.WithLabelValues(activity).Set(float64(size))
}

// UpdateRosterCapacity sets the capacity gauge for an activity.
func UpdateRosterCapacity(activity string, capacity int) {
	globalManager.rosterCapacity.WithLabelValues(activity).Set(float64(capacity))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one request latency in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
