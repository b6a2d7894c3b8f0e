package types

import "context"

// StateStore persists AppState per namespace.
//
// A namespace is a caller-scoped identifier (for example a teacher account)
// that only partitions storage; the assignment engine never sees it.
//
// Implementations provide compare-and-swap semantics through revisions so that
// a caller can enforce single-writer discipline:
//   - Load returns the stored state together with its revision
//   - Save with revision 0 creates the entry and fails if it already exists
//   - Save with a non-zero revision fails if the entry changed since that revision
type StateStore interface {
	// Load returns the stored state for namespace.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - namespace: Caller-scoped identifier
	//
	// Returns:
	//   - AppState: Stored state
	//   - uint64: Revision of the stored entry
	//   - error: ErrStateNotFound when nothing is stored, other errors on failure
	Load(ctx context.Context, namespace string) (AppState, uint64, error)

	// Save stores state for namespace if the stored revision still equals revision.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - namespace: Caller-scoped identifier
	//   - state: State to store
	//   - revision: Revision returned by Load, or 0 to create
	//
	// Returns:
	//   - uint64: New revision
	//   - error: ErrRevisionConflict on a lost update, other errors on failure
	Save(ctx context.Context, namespace string, state AppState, revision uint64) (uint64, error)
}
