package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Titan API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "titan",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "titan",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Completion call duration
	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "titan",
			Subsystem: "api",
			Name:      "completion_duration_seconds",
			Help:      "Chat completion call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"model", "outcome"},
	)

	// Token counter
	TokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "titan",
			Subsystem: "api",
			Name:      "tokens_total",
			Help:      "Total completion tokens consumed",
		},
		[]string{"model"},
	)

	// Chat exchange counter
	ChatExchangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "titan",
			Subsystem: "api",
			Name:      "chat_exchanges_total",
			Help:      "Chat exchanges by outcome (reply or fallback)",
		},
		[]string{"outcome"},
	)

	// Connected realtime clients gauge
	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "titan",
			Subsystem: "api",
			Name:      "websocket_clients",
			Help:      "Currently connected WebSocket clients",
		},
	)

	// Autonomy scheduler ticks
	AutonomyTicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "titan",
			Subsystem: "api",
			Name:      "autonomy_ticks_total",
			Help:      "Autonomy scheduler runs by status",
		},
		[]string{"status"},
	)
)

// RecordRequest records an HTTP request with all relevant labels
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordCompletion records one completion call
func RecordCompletion(model, outcome string, durationSec float64, tokens int) {
	if model == "" {
		model = "default"
	}
	CompletionDuration.WithLabelValues(model, outcome).Observe(durationSec)
	if tokens > 0 {
		TokensTotal.WithLabelValues(model).Add(float64(tokens))
	}
}

// RecordChatExchange records a chat exchange outcome
func RecordChatExchange(outcome string) {
	if outcome == "" {
		outcome = "unknown"
	}
	ChatExchangesTotal.WithLabelValues(outcome).Inc()
}

// SetWebsocketClients sets the connected client gauge
func SetWebsocketClients(count int) {
	WebsocketClients.Set(float64(count))
}

// RecordAutonomyTick records one scheduler run
func RecordAutonomyTick(status string) {
	AutonomyTicksTotal.WithLabelValues(status).Inc()
}
