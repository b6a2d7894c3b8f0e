package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/rota/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// a PrometheusCollector never touches the registry.
type PrometheusCollector struct {
	*NopMetrics

	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	notices           *prometheus.CounterVec
	assignments       prometheus.Histogram
	cycleRemaining    prometheus.Gauge
	storeDuration     *prometheus.HistogramVec
	saveConflicts     prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "rota" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "rota"
	}

	return &PrometheusCollector{NopMetrics: NewNop(), reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.operations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "service",
			Name:      "operations_total",
			Help:      "Total service operations by operation and outcome.",
		}, []string{"op", "success"})

		p.operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "service",
			Name:      "operation_duration_seconds",
			Help:      "Latency of service operations in seconds, load and save included.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~2s
		}, []string{"op"})

		p.notices = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "notices_total",
			Help:      "Notices raised by assignment runs, by kind.",
		}, []string{"kind"})

		p.assignments = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "assignments_per_run",
			Help:      "Number of assignments made per run.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		})

		p.cycleRemaining = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "cycle_remaining_students",
			Help:      "Students not yet assigned in the current fairness cycle after the last run.",
		})

		p.storeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Latency of state store operations in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"operation"})

		p.saveConflicts = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "save_conflicts_total",
			Help:      "Saves rejected because the state changed since it was loaded.",
		})

		p.reg.MustRegister(p.operations)
		p.reg.MustRegister(p.operationDuration)
		p.reg.MustRegister(p.notices)
		p.reg.MustRegister(p.assignments)
		p.reg.MustRegister(p.cycleRemaining)
		p.reg.MustRegister(p.storeDuration)
		p.reg.MustRegister(p.saveConflicts)
	})
}

// ServiceMetrics implementation

// RecordOperation counts the operation and observes its latency.
func (p *PrometheusCollector) RecordOperation(op string, success bool, duration float64) {
	p.ensureRegistered()
	p.operations.WithLabelValues(op, strconv.FormatBool(success)).Inc()
	p.operationDuration.WithLabelValues(op).Observe(duration)
}

// EngineMetrics implementation

// RecordNotice increments the notice counter for kind.
func (p *PrometheusCollector) RecordNotice(kind string) {
	p.ensureRegistered()
	p.notices.WithLabelValues(kind).Inc()
}

// RecordAssignments observes the number of assignments of a run.
func (p *PrometheusCollector) RecordAssignments(count int) {
	p.ensureRegistered()
	p.assignments.Observe(float64(count))
}

// RecordCycleRemaining sets the cycle queue gauge.
func (p *PrometheusCollector) RecordCycleRemaining(count int) {
	p.ensureRegistered()
	p.cycleRemaining.Set(float64(count))
}

// StoreMetrics implementation

// RecordStoreOperationDuration observes store latency by operation.
func (p *PrometheusCollector) RecordStoreOperationDuration(operation string, duration float64) {
	p.ensureRegistered()
	p.storeDuration.WithLabelValues(operation).Observe(duration)
}

// RecordSaveConflict increments the save conflict counter.
func (p *PrometheusCollector) RecordSaveConflict() {
	p.ensureRegistered()
	p.saveConflicts.Inc()
}
