// Package metrics provides Prometheus metrics for the harf literacy service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Progression metrics
	letterAttempts  prometheus.Counter
	lettersPassed   prometheus.Counter
	gateRejections  prometheus.Counter
	cvcActivities   *prometheus.CounterVec
	attemptLatency  prometheus.Histogram
	totalStudents   prometheus.Gauge
	seededRows      *prometheus.CounterVec
	storeOpLatency  *prometheus.HistogramVec
	storeOpFailures *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
	errorsByType        *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global manager on a custom registry, so default Go collectors stay out.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton metrics registry

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "harf",
		subsystem:        "progress",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.letterAttempts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "letter_attempts_total",
		Help:      "Total number of letter attempts recorded",
	})

	m.lettersPassed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "letters_passed_total",
		Help:      "Total number of attempts that crossed the pass threshold",
	})

	m.gateRejections = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "gate_rejections_total",
		Help:      "Total number of attempts rejected by the sequential letter gate",
	})

	m.cvcActivities = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cvc_activities_total",
		Help:      "Total number of CVC activities recorded, by kind",
	}, []string{"kind"})

	m.attemptLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "attempt_latency_milliseconds",
		Help:      "Histogram of attempt transaction latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.totalStudents = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "students_total",
		Help:      "Current number of students with recorded progress",
	})

	m.seededRows = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "seeded_rows_total",
		Help:      "Catalog rows touched by the seeder, by catalog and outcome",
	}, []string{"catalog", "outcome"})

	m.storeOpLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_op_latency_milliseconds",
		Help:      "Histogram of storage operation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"op"})

	m.storeOpFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_op_failures_total",
		Help:      "Storage operation failures, by operation",
	}, []string{"op"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests, by endpoint, method and status code",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Request errors, by endpoint, method and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.errorsByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "Request errors, by error type and severity",
	}, []string{"error_type", "severity"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Current allocated heap memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "gc_pause_milliseconds",
		Help:      "Histogram of average GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// GetRegistry returns the gatherer backing /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level recording helpers on the global manager.

// RecordLetterAttempt counts an accepted letter attempt; passed indicates
// whether the stored record is past the threshold after the attempt.
func RecordLetterAttempt(passed bool) {
	if !globalManager.enabled {
		return
	}
	globalManager.letterAttempts.Inc()
	if passed {
		globalManager.lettersPassed.Inc()
	}
}

// RecordGateRejection counts an attempt blocked by the sequential gate.
func RecordGateRejection() {
	if !globalManager.enabled {
		return
	}
	globalManager.gateRejections.Inc()
}

// RecordCVCActivity counts a CVC activity by kind (word, sentence, story).
func RecordCVCActivity(kind string) {
	if !globalManager.enabled {
		return
	}
	globalManager.cvcActivities.WithLabelValues(kind).Inc()
}

// RecordAttemptLatency observes the latency of one attempt transaction.
func RecordAttemptLatency(ms float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.attemptLatency.Observe(ms)
}

// UpdateTotalStudents sets the current student count gauge.
func UpdateTotalStudents(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.totalStudents.Set(float64(n))
}

// RecordSeededRows counts catalog rows by seeding outcome
// (created or already_existed).
func RecordSeededRows(catalog, outcome string, n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.seededRows.WithLabelValues(catalog, outcome).Add(float64(n))
}

// RecordStoreOp observes a storage operation's latency.
func RecordStoreOp(op string, ms float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.storeOpLatency.WithLabelValues(op).Observe(ms)
}

// RecordStoreFailure counts a storage operation failure.
func RecordStoreFailure(op string) {
	if !globalManager.enabled {
		return
	}
	globalManager.storeOpFailures.WithLabelValues(op).Inc()
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request's duration.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

// RecordErrorByEndpoint counts a request error for an endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType counts a request error by type and severity.
func RecordErrorByType(errorType, severity string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorsByType.WithLabelValues(errorType, severity).Inc()
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGoroutineCount.Set(float64(n))
}

// RecordSystemGCPauseTime observes the average GC pause time.
func RecordSystemGCPauseTime(ms float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGCPauseTime.Observe(ms)
}
