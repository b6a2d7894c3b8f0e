package metrics

import "github.com/arloliu/rota/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	svc, err := rota.NewService(&cfg, store, rota.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// ServiceMetrics implementation

// RecordOperation discards the operation metric.
func (n *NopMetrics) RecordOperation(_ /* op */ string, _ /* success */ bool, _ /* duration */ float64) {
	// No-op
}

// EngineMetrics implementation

// RecordNotice discards the notice metric.
func (n *NopMetrics) RecordNotice(_ /* kind */ string) {
	// No-op
}

// RecordAssignments discards the assignment count metric.
func (n *NopMetrics) RecordAssignments(_ /* count */ int) {
	// No-op
}

// RecordCycleRemaining discards the cycle queue gauge.
func (n *NopMetrics) RecordCycleRemaining(_ /* count */ int) {
	// No-op
}

// StoreMetrics implementation

// RecordStoreOperationDuration discards the store latency metric.
func (n *NopMetrics) RecordStoreOperationDuration(_ /* operation */ string, _ /* duration */ float64) {
	// No-op
}

// RecordSaveConflict discards the save conflict counter.
func (n *NopMetrics) RecordSaveConflict() {
	// No-op
}
