package store

import (
	"context"
	"errors"
	"time"

	"github.com/arloliu/rota/types"
)

// Instrumented wraps a StateStore and records latency and save conflicts.
type Instrumented struct {
	next    types.StateStore
	metrics types.StoreMetrics
}

var _ types.StateStore = (*Instrumented)(nil)

// Instrument wraps st so every call is reported to metrics.
//
// Parameters:
//   - st: Store to wrap
//   - metrics: Metrics sink
//
// Returns:
//   - *Instrumented: Wrapped store
func Instrument(st types.StateStore, metrics types.StoreMetrics) *Instrumented {
	return &Instrumented{next: st, metrics: metrics}
}

// Load delegates to the wrapped store and records the "load" duration.
func (i *Instrumented) Load(ctx context.Context, namespace string) (types.AppState, uint64, error) {
	start := time.Now()
	state, rev, err := i.next.Load(ctx, namespace)
	i.metrics.RecordStoreOperationDuration("load", time.Since(start).Seconds())

	return state, rev, err
}

// Save delegates to the wrapped store, records the "save" duration and counts
// revision conflicts.
func (i *Instrumented) Save(ctx context.Context, namespace string, state types.AppState, revision uint64) (uint64, error) {
	start := time.Now()
	rev, err := i.next.Save(ctx, namespace, state, revision)
	i.metrics.RecordStoreOperationDuration("save", time.Since(start).Seconds())
	if errors.Is(err, types.ErrRevisionConflict) {
		i.metrics.RecordSaveConflict()
	}

	return rev, err
}

// Unwrap returns the wrapped store.
func (i *Instrumented) Unwrap() types.StateStore {
	return i.next
}
