package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/rota/types"
)

// memoryEntry is a stored state in its JSON form, so loads always return a
// fresh copy that shares nothing with the caller that saved it.
type memoryEntry struct {
	data     []byte
	revision uint64
}

// Memory is an in-process StateStore with revision semantics matching KV.
//
// Revisions are per namespace and start at 1. Memory is safe for concurrent use.
type Memory struct {
	entries *xsync.Map[string, memoryEntry]
}

var _ types.StateStore = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
//
// Example:
//
//	st := store.NewMemory()
//	svc, err := rota.NewService(&cfg, st)
func NewMemory() *Memory {
	return &Memory{entries: xsync.NewMap[string, memoryEntry]()}
}

// Load returns the stored state for namespace and its revision.
func (m *Memory) Load(ctx context.Context, namespace string) (types.AppState, uint64, error) {
	if err := ctx.Err(); err != nil {
		return types.AppState{}, 0, err
	}

	entry, ok := m.entries.Load(namespace)
	if !ok {
		return types.AppState{}, 0, types.ErrStateNotFound
	}

	var state types.AppState
	if err := json.Unmarshal(entry.data, &state); err != nil {
		return types.AppState{}, 0, fmt.Errorf("decode state for %q (revision %d): %w", namespace, entry.revision, err)
	}

	return state, entry.revision, nil
}

// Save stores state for namespace if its revision is still revision.
//
// The revision check and the write happen atomically inside one Compute call.
func (m *Memory) Save(ctx context.Context, namespace string, state types.AppState, revision uint64) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	data, err := json.Marshal(state)
	if err != nil {
		return 0, fmt.Errorf("encode state for %q: %w", namespace, err)
	}

	conflict := false
	entry, _ := m.entries.Compute(namespace, func(old memoryEntry, loaded bool) (memoryEntry, xsync.ComputeOp) {
		current := uint64(0)
		if loaded {
			current = old.revision
		}
		if current != revision {
			conflict = true
			return old, xsync.CancelOp
		}

		return memoryEntry{data: data, revision: current + 1}, xsync.UpdateOp
	})
	if conflict {
		return 0, fmt.Errorf("save state for %q at revision %d: %w", namespace, revision, types.ErrRevisionConflict)
	}

	return entry.revision, nil
}

// Delete removes the state of namespace. Deleting a missing namespace is not an error.
func (m *Memory) Delete(_ context.Context, namespace string) error {
	m.entries.Delete(namespace)
	return nil
}

// Len returns the number of stored namespaces.
func (m *Memory) Len() int {
	return m.entries.Size()
}
