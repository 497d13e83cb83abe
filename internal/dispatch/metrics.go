package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects dispatcher statistics. All collectors are registered
// on the supplied registerer; pass prometheus.DefaultRegisterer for
// process-wide exposition or a private registry in tests.
type Metrics struct {
	inbound       *prometheus.CounterVec
	responses     *prometheus.CounterVec
	errors        *prometheus.CounterVec
	handleSeconds *prometheus.HistogramVec
	inFlight      prometheus.Gauge
	pendingSendID prometheus.Gauge
}

// NewMetrics builds and registers the dispatcher collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		inbound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lspcore",
			Subsystem: "dispatch",
			Name:      "inbound_messages_total",
			Help:      "Inbound messages by kind and method.",
		}, []string{"kind", "method"}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lspcore",
			Subsystem: "dispatch",
			Name:      "responses_total",
			Help:      "Responses emitted by status.",
		}, []string{"status"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lspcore",
			Subsystem: "dispatch",
			Name:      "errors_total",
			Help:      "Error responses by JSON-RPC error code.",
		}, []string{"code"}),
		handleSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lspcore",
			Subsystem: "dispatch",
			Name:      "handle_seconds",
			Help:      "Wall time from parse to slot release.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lspcore",
			Subsystem: "dispatch",
			Name:      "in_flight",
			Help:      "Messages currently being handled.",
		}),
		pendingSendID: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lspcore",
			Subsystem: "dispatch",
			Name:      "pending_send_id",
			Help:      "Lowest send ordinal not yet released.",
		}),
	}
	reg.MustRegister(m.inbound, m.responses, m.errors, m.handleSeconds, m.inFlight, m.pendingSendID)
	return m
}

func (m *Metrics) recordInbound(kind, method string) {
	if m == nil {
		return
	}
	m.inbound.WithLabelValues(kind, method).Inc()
	m.inFlight.Inc()
}

func (m *Metrics) recordDone(method string, seconds float64) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	m.handleSeconds.WithLabelValues(method).Observe(seconds)
}

func (m *Metrics) recordResponse(status string) {
	if m == nil {
		return
	}
	m.responses.WithLabelValues(status).Inc()
}

func (m *Metrics) recordError(code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(code).Inc()
}

func (m *Metrics) setPending(sendID uint64) {
	if m == nil {
		return
	}
	m.pendingSendID.Set(float64(sendID))
}
