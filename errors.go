package rota

import "github.com/arloliu/rota/types"

// Sentinel errors re-exported from the types package.
//
// Match them with errors.Is; every error returned by the Service that stems
// from one of these conditions wraps the sentinel.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrStateStoreRequired is returned when the state store is nil.
	ErrStateStoreRequired = types.ErrStateStoreRequired

	// ErrAssignmentStrategyRequired is returned when a nil strategy is injected.
	ErrAssignmentStrategyRequired = types.ErrAssignmentStrategyRequired

	// ErrNamespaceRequired is returned when an operation gets an empty namespace.
	ErrNamespaceRequired = types.ErrNamespaceRequired

	// ErrInvariantViolation is returned for malformed rosters or state.
	ErrInvariantViolation = types.ErrInvariantViolation

	// ErrNotFound is returned when a roster edit targets a missing entry.
	ErrNotFound = types.ErrNotFound

	// ErrStateNotFound is returned by stores when a namespace has no state.
	ErrStateNotFound = types.ErrStateNotFound

	// ErrRevisionConflict is returned when another writer saved first.
	ErrRevisionConflict = types.ErrRevisionConflict

	// ErrStoreUnavailable is returned when the store cannot be reached.
	ErrStoreUnavailable = types.ErrStoreUnavailable
)
