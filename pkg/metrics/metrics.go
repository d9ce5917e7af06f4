package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry holds every collector exposed on /metrics
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	// Buckets cover fast local handlers up to the 10s Telegram timeout
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Telegram client metrics
	TelegramRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "telegram_client_request_duration_seconds",
			Help:    "Telegram Bot API call duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"method", "status"},
	)

	TelegramRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_client_request_total",
			Help: "Total number of Telegram Bot API calls",
		},
		[]string{"method", "status"},
	)

	// Cache Metrics
	CacheHits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	// Business Metrics
	FormSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inzzo_form_submissions_total",
			Help: "Total number of landing form submissions",
		},
		[]string{"kind", "status"},
	)

	Notifications = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inzzo_notifications_total",
			Help: "Total number of notification attempts",
		},
		[]string{"kind", "status"},
	)
)

// Init registers the Go runtime and process collectors
func Init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
