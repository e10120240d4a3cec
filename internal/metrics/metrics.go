package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "client_registry"

// OutcomeSuccess é o rótulo de sucesso; falhas usam o ErrorKind do envelope.
const OutcomeSuccess = "success"

type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	gatherer   prometheus.Gatherer
}

// New registra os coletores em reg. Um registry próprio mantém os testes isolados.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_operations_total",
			Help:      "Client service operations by outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "client_operation_duration_seconds",
			Help:      "Client service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		gatherer: reg,
	}

	reg.MustRegister(m.operations, m.duration)
	return m
}

// NewDefaultRegistry inclui os coletores de runtime e processo.
func NewDefaultRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (m *Metrics) Observe(operation, outcome string, elapsed time.Duration) {
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) Operations() *prometheus.CounterVec {
	return m.operations
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
