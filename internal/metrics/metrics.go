package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess       = "success"
	OutcomeNetworkError  = "network_error"
	OutcomeAPIError      = "api_error"
	OutcomeDecodeError   = "decode_error"
	OutcomeInvalidConfig = "invalid_config"
)

type Metrics struct {
	// Gateway Metrics
	GatewayRequestsTotal   *prometheus.CounterVec
	GatewayRequestDuration *prometheus.HistogramVec
	GatewayRetries         *prometheus.CounterVec
	AvailableCredits       prometheus.Gauge

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Queue Metrics
	QueueMessagesConsumed *prometheus.CounterVec
	QueueMessagesQueued   prometheus.Counter

	// History Metrics
	HistoryRecordsArchived *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		GatewayRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ujumbesms_gateway_requests_total",
				Help: "Total number of UjumbeSMS API calls",
			},
			[]string{"endpoint", "outcome"},
		),
		GatewayRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ujumbesms_gateway_request_duration_seconds",
				Help:    "Duration of UjumbeSMS API calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		GatewayRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ujumbesms_gateway_retries_total",
				Help: "Total number of retried UjumbeSMS API calls",
			},
			[]string{"endpoint"},
		),
		AvailableCredits: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ujumbesms_available_credits",
				Help: "Credits left on the account as last reported by the gateway",
			},
		),

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ujumbesms_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ujumbesms_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ujumbesms_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		QueueMessagesConsumed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ujumbesms_queue_messages_consumed_total",
				Help: "Total number of send commands consumed from the queue",
			},
			[]string{"outcome"},
		),
		QueueMessagesQueued: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ujumbesms_queue_messages_queued_total",
				Help: "Total number of send commands published to the queue",
			},
		),

		HistoryRecordsArchived: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ujumbesms_history_records_archived_total",
				Help: "Total number of message history records written to the archive",
			},
			[]string{"status_class"},
		),
	}
}

// --- Recording Methods ---

func (m *Metrics) RecordGatewayCall(endpoint, outcome string, duration time.Duration) {
	m.GatewayRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.GatewayRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *Metrics) RecordGatewayRetry(endpoint string) {
	m.GatewayRetries.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) SetAvailableCredits(credits float64) {
	m.AvailableCredits.Set(credits)
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordConsumed(outcome string) {
	m.QueueMessagesConsumed.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordQueued() {
	m.QueueMessagesQueued.Inc()
}

func (m *Metrics) RecordArchived(statusClass string, count int) {
	m.HistoryRecordsArchived.WithLabelValues(statusClass).Add(float64(count))
}
